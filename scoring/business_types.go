package scoring

import "strings"

// BusinessType is a normalized business category key. All lookups across the
// scorer, the competition analyzer and the feasibility matcher go through
// NormalizeBusinessType so the three never disagree on what a string means.
type BusinessType string

const DefaultBusinessType BusinessType = "default"

// Sensitivity describes how hard overcrowding hits service quality.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// BusinessProfile holds the static per-type parameters consumed by the
// revenue scorer.
type BusinessProfile struct {
	AvgSpend    float64     `json:"avg_spend"`
	BaseConv    float64     `json:"base_conv"`
	Label       string      `json:"label"`
	OptimalMin  float64     `json:"optimal_min"`
	OptimalMax  float64     `json:"optimal_max"`
	Sensitivity Sensitivity `json:"sensitivity"`
}

var businessProfiles = map[BusinessType]BusinessProfile{
	"cafe": {
		AvgSpend:    350,
		BaseConv:    0.18,
		Label:       "Hospitality",
		OptimalMin:  20,
		OptimalMax:  60,
		Sensitivity: SensitivityHigh,
	},
	"restaurant": {
		AvgSpend:    1200,
		BaseConv:    0.10,
		Label:       "Dining",
		OptimalMin:  40,
		OptimalMax:  100,
		Sensitivity: SensitivityMedium,
	},
	"fast_food": {
		AvgSpend:    500,
		BaseConv:    0.25,
		Label:       "Dining",
		OptimalMin:  50,
		OptimalMax:  150,
		Sensitivity: SensitivityLow,
	},
	"shop": {
		AvgSpend:    2000,
		BaseConv:    0.08,
		Label:       "Retail",
		OptimalMin:  10,
		OptimalMax:  50,
		Sensitivity: SensitivityMedium,
	},
	"supermarket": {
		AvgSpend:    1800,
		BaseConv:    0.35,
		Label:       "Retail",
		OptimalMin:  50,
		OptimalMax:  200,
		Sensitivity: SensitivityLow,
	},
	"pharmacy": {
		AvgSpend:    800,
		BaseConv:    0.40,
		Label:       "Healthcare",
		OptimalMin:  10,
		OptimalMax:  40,
		Sensitivity: SensitivityHigh,
	},
	DefaultBusinessType: {
		AvgSpend:    600,
		BaseConv:    0.05,
		Label:       "General Business",
		OptimalMin:  10,
		OptimalMax:  50,
		Sensitivity: SensitivityMedium,
	},
}

// synonyms folds common user phrasings into the canonical dataset categories.
var synonyms = map[BusinessType]BusinessType{
	"grocery_shop":  "supermarket",
	"grocery":       "supermarket",
	"medical_store": "pharmacy",
	"chemist":       "pharmacy",
	"pub":           "restaurant",
	"bar":           "restaurant",
	"coffee_shop":   "cafe",
	"book_shop":     "book_store",
	"cloth_store":   "clothing_store",
	"garments":      "clothing_store",
}

// NormalizeKey lowercases, folds whitespace and hyphens to underscores and
// strips a trailing "_business" suffix, without applying synonyms. The
// feasibility matcher uses it to also search for the user's literal phrasing.
func NormalizeKey(raw string) string {
	key := strings.TrimSpace(strings.ToLower(raw))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return strings.TrimSuffix(key, "_business")
}

// NormalizeBusinessType applies NormalizeKey plus the synonym table. Empty
// input normalizes to the default type.
func NormalizeBusinessType(raw string) BusinessType {
	key := NormalizeKey(raw)
	if key == "" {
		return DefaultBusinessType
	}
	bt := BusinessType(key)
	if canonical, ok := synonyms[bt]; ok {
		return canonical
	}
	return bt
}

// ProfileFor resolves the profile for a business type. Unknown types resolve
// to the default profile, never to an absent value.
func ProfileFor(bt BusinessType) BusinessProfile {
	if p, ok := businessProfiles[bt]; ok {
		return p
	}
	return businessProfiles[DefaultBusinessType]
}
