package scoring

import (
	"math"
	"math/rand"
	"time"

	"bizsense-server/models"
)

// AreaType is the coarse land-use guess used by the bulk enrichment path.
type AreaType string

const (
	AreaResidential AreaType = "residential"
	AreaCommercial  AreaType = "commercial"
	AreaTourism     AreaType = "tourism"
	AreaMarket      AreaType = "market"
)

// InferAreaType guesses the area character from POI tag frequencies.
func InferAreaType(pois []models.OverpassElement) AreaType {
	total := len(pois)
	if total == 0 {
		return AreaResidential
	}

	var shops, offices, tourism int
	for i := range pois {
		if pois[i].Tag("shop") != "" {
			shops++
		}
		if pois[i].Tag("office") != "" {
			offices++
		}
		if pois[i].Tag("tourism") != "" {
			tourism++
		}
	}

	if float64(offices) > float64(total)*0.2 {
		return AreaCommercial
	}
	if float64(tourism) > float64(total)*0.1 {
		return AreaTourism
	}
	if float64(shops) > float64(total)*0.4 {
		return AreaMarket
	}
	return AreaResidential
}

// areaCQI maps area character to the dominant archetype's spend multiplier.
func areaCQI(area AreaType) float64 {
	switch area {
	case AreaCommercial:
		return cqiMultipliers["professional"]
	case AreaMarket:
		return cqiMultipliers["family"]
	case AreaTourism:
		return cqiMultipliers["tourist"]
	default:
		return cqiMultipliers["resident"]
	}
}

// PlaceRevenue is the per-place annotation produced by EnrichPlaces.
type PlaceRevenue struct {
	EstimatedDailyRevenue   float64 `json:"estimated_daily_revenue"`
	EstimatedMonthlyRevenue float64 `json:"estimated_monthly_revenue"`
	PeakHourRevenue         float64 `json:"peak_hour_revenue"`
	PotentialScore          int     `json:"potential_score"`
	BusinessHealth          string  `json:"business_health"`
	OverloadRisk            int     `json:"overload_risk"`
}

// EnrichedPlace pairs an element with its revenue annotation.
type EnrichedPlace struct {
	models.OverpassElement
	RevenueData PlaceRevenue `json:"revenue_data"`
}

// EnrichPlaces annotates every place with a coarse revenue simulation seeded
// by global POI density. Unlike Score, this path deliberately injects a ±15%
// fluctuation per place for a live feel; callers own the rand source so tests
// can fix the seed. A nil rng falls back to a time-seeded source.
func EnrichPlaces(pois []models.OverpassElement, hour int, rng *rand.Rand) ([]EnrichedPlace, float64) {
	if len(pois) == 0 {
		return nil, 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if hour == UseCurrentHour {
		hour = time.Now().Hour()
	}

	cqi := areaCQI(InferAreaType(pois))
	temporalMult, _ := DaypartMultiplier(hour)

	// More POIs nearby means a higher baseline footfall everywhere.
	globalDensity := math.Min(float64(len(pois))/20.0, 3.0)

	enriched := make([]EnrichedPlace, 0, len(pois))
	var totalMonthly float64

	for i := range pois {
		bt := NormalizeBusinessType(pois[i].Category())
		profile := ProfileFor(bt)

		footfall := 50 * globalDensity * temporalMult
		fluctuation := 1 + (rng.Float64()-0.5)*0.3
		footfall *= fluctuation

		conversion := profile.BaseConv * cqi
		daily := footfall * conversion * profile.AvgSpend
		monthly := daily * 30

		optMax := math.Max(1, profile.OptimalMax)
		potential := int(math.Min(100, footfall/optMax*100))

		health := "Weak"
		if potential >= 70 {
			health = "Strong"
		} else if potential >= 40 {
			health = "Moderate"
		}

		overloadRisk := 0
		if footfall > optMax {
			overloadRisk = int(math.Max(0, (footfall-optMax)/optMax*100))
		}

		enriched = append(enriched, EnrichedPlace{
			OverpassElement: pois[i],
			RevenueData: PlaceRevenue{
				EstimatedDailyRevenue:   round2(daily),
				EstimatedMonthlyRevenue: round2(monthly),
				PeakHourRevenue:         round2(daily / 8),
				PotentialScore:          potential,
				BusinessHealth:          health,
				OverloadRisk:            overloadRisk,
			},
		})
		totalMonthly += monthly
	}

	return enriched, round2(totalMonthly)
}

// CrowdScore caps the raw POI count at 100 for UI display.
func CrowdScore(pois []models.OverpassElement) int {
	if len(pois) > 100 {
		return 100
	}
	return len(pois)
}

// PredictRevenue is the legacy single-value revenue estimate kept for
// backward compatibility with the dashboard.
func PredictRevenue(crowdScore int) int {
	if crowdScore < 0 {
		crowdScore = 0
	}
	if crowdScore > 100 {
		crowdScore = 100
	}
	return 120000 + crowdScore*7200
}
