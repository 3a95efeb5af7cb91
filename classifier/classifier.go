// Package classifier maps a crowd-intensity tier plus an area hint to a
// suggested business label, standing in for the trained model of the upstream
// system. The label vocabulary and the (crowd, shops, area) feature space
// mirror the training dataset; the decision surface is a fixed table so
// predictions stay deterministic.
package classifier

import (
	"sort"
	"strings"

	"bizsense-server/models"
)

// variant is one (shops, area) combination observed for an intensity tier in
// the training data.
type variant struct {
	Shops string
	Area  string
}

type featureKey struct {
	Crowd string
	Shops string
	Area  string
}

// Classifier is an immutable prediction handle. Build it once with New and
// pass it around; there is no lazy package-level state.
type Classifier struct {
	variantsByIntensity map[string][]variant
	decisions           map[featureKey]string
	choicesByIntensity  map[string][]string
	fallbackByIntensity map[string]string
}

// New builds the classifier from the embedded training-derived tables.
func New() *Classifier {
	c := &Classifier{
		variantsByIntensity: map[string][]variant{
			"high": {
				{"high", "commercial"}, {"high", "market"}, {"medium", "college"},
				{"high", "mall"}, {"medium", "office"},
			},
			"medium": {
				{"medium", "residential"}, {"medium", "commercial"},
				{"low", "residential"}, {"medium", "city_center"},
			},
			"low": {
				{"low", "outskirts"}, {"low", "industrial"},
				{"low", "village"}, {"low", "storage"},
			},
		},
		decisions: map[featureKey]string{
			{"high", "high", "commercial"}: "restaurant",
			{"high", "high", "market"}:     "clothing_store",
			{"high", "medium", "college"}:  "cafe",
			{"high", "high", "mall"}:       "electronics_store",
			{"high", "medium", "office"}:   "fast_food",

			{"medium", "medium", "residential"}: "supermarket",
			{"medium", "medium", "commercial"}:  "pharmacy",
			{"medium", "low", "residential"}:    "bakery",
			{"medium", "medium", "city_center"}: "book_store",

			{"low", "low", "outskirts"}:  "warehouse",
			{"low", "low", "industrial"}: "storage",
			{"low", "low", "village"}:    "dairy",
			{"low", "low", "storage"}:    "workshop",
		},
		fallbackByIntensity: map[string]string{
			"high":   "restaurant",
			"medium": "supermarket",
			"low":    "warehouse",
		},
	}

	// Per-intensity vocabularies derive from the decision table.
	c.choicesByIntensity = make(map[string][]string, len(c.decisions))
	seen := make(map[string]map[string]bool)
	for key, business := range c.decisions {
		if seen[key.Crowd] == nil {
			seen[key.Crowd] = make(map[string]bool)
		}
		if !seen[key.Crowd][business] {
			seen[key.Crowd][business] = true
			c.choicesByIntensity[key.Crowd] = append(c.choicesByIntensity[key.Crowd], business)
		}
	}
	for intensity := range c.choicesByIntensity {
		sort.Strings(c.choicesByIntensity[intensity])
	}
	return c
}

func normalizeIntensity(intensity string) string {
	s := strings.TrimSpace(strings.ToLower(intensity))
	if s != "high" && s != "medium" {
		return "low"
	}
	return s
}

// Predict returns the suggested business label for a crowd tier. areaHint,
// when present, selects the matching (shops, area) variant so predictions
// vary by location character; otherwise the tier's first variant is used.
func (c *Classifier) Predict(intensity string, areaHint string) string {
	tier := normalizeIntensity(intensity)
	variants := c.variantsByIntensity[tier]

	chosen := variants[0]
	if areaHint != "" {
		hint := strings.TrimSpace(strings.ToLower(areaHint))
		for _, v := range variants {
			if v.Area == hint {
				chosen = v
				break
			}
		}
	}

	if business, ok := c.decisions[featureKey{tier, chosen.Shops, chosen.Area}]; ok {
		return business
	}
	return c.fallbackByIntensity[tier]
}

// ChoicesFor lists the known business labels for an intensity tier. An
// unknown tier falls back to the union of all labels.
func (c *Classifier) ChoicesFor(intensity string) []string {
	tier := strings.TrimSpace(strings.ToLower(intensity))
	if choices, ok := c.choicesByIntensity[tier]; ok {
		return append([]string(nil), choices...)
	}

	union := make(map[string]bool)
	for _, choices := range c.choicesByIntensity {
		for _, b := range choices {
			union[b] = true
		}
	}
	all := make([]string, 0, len(union))
	for b := range union {
		all = append(all, b)
	}
	sort.Strings(all)
	return all
}

// AllChoices returns the full {intensity: labels} mapping.
func (c *Classifier) AllChoices() map[string][]string {
	out := make(map[string][]string, len(c.choicesByIntensity))
	for intensity, choices := range c.choicesByIntensity {
		out[intensity] = append([]string(nil), choices...)
	}
	return out
}

// InferAreaHint guesses the dataset area value from POI tags so predictions
// differ by location. Empty string means no confident hint.
func InferAreaHint(pois []models.OverpassElement) string {
	counts := make(map[string]int)
	for i := range pois {
		if t := pois[i].Category(); t != "" {
			counts[t]++
		}
	}
	if len(counts) == 0 {
		return ""
	}

	if counts["restaurant"]+counts["cafe"]+counts["fast_food"] > 3 {
		return "commercial"
	}
	if counts["school"]+counts["college"]+counts["university"] > 1 {
		return "college"
	}
	if counts["hospital"]+counts["pharmacy"] > 1 {
		return "residential"
	}
	if counts["market"] > 0 {
		return "market"
	}
	if counts["mall"] > 0 {
		return "mall"
	}
	if counts["place_of_worship"]+counts["community_centre"] > 2 {
		return "residential"
	}
	return ""
}
