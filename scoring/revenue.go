package scoring

import (
	"math"
	"time"

	"bizsense-server/models"
)

// UseCurrentHour makes Score resolve the hour from the wall clock.
const UseCurrentHour = -1

const minFootfall = 10.0

// ScoredResult is the output of the smart revenue scorer.
type ScoredResult struct {
	Daypart            string      `json:"daypart"`
	Footfall           float64     `json:"footfall"`
	ConversionRate     float64     `json:"conversion_rate"`
	CustomerQuality    float64     `json:"customer_quality"`
	CustomerMix        CustomerMix `json:"customer_mix"`
	DynamicAvgSpend    float64     `json:"dynamic_avg_spend"`
	EffectiveCustomers float64     `json:"effective_customers"`
	DailyRevenue       float64     `json:"daily_revenue"`
	MonthlyRevenue     float64     `json:"estimated_monthly_revenue"`
	PeakHourRevenue    float64     `json:"peak_hour_revenue"`
	OverloadRisk       int         `json:"overload_risk"`
	PotentialScore     int         `json:"potential_score"`
	BusinessHealth     string      `json:"business_health"`
	Recommendations    []string    `json:"recommendations"`
}

// overloadPenalty depresses revenue once the crowd exceeds the optimal
// capacity for the business. Floored at 0.4 so overcrowding never fully
// zeroes revenue.
func overloadPenalty(footfall, optimalMax float64, sensitivity Sensitivity) float64 {
	if footfall <= optimalMax {
		return 1.0
	}
	excessRatio := (footfall - optimalMax) / optimalMax
	factor := 0.2
	if sensitivity == SensitivityHigh {
		factor = 0.5
	}
	return math.Max(0.4, 1.0-excessRatio*factor)
}

func recommendations(overloadRisk int, conversion, customerQuality float64) []string {
	var recs []string
	switch {
	case overloadRisk >= 70:
		recs = append(recs, "High overload risk detected: add queue automation and split peak-hour staffing.")
	case overloadRisk >= 40:
		recs = append(recs, "Moderate overload risk: introduce time-slot discounts to flatten spikes.")
	default:
		recs = append(recs, "Low overload risk: scale marketing during lunch/evening to capture unused capacity.")
	}

	if conversion < 0.08 {
		recs = append(recs, "Conversion is weak: improve storefront visibility and local ad targeting.")
	} else {
		recs = append(recs, "Conversion is healthy: prioritize upsell bundles to lift average spend.")
	}

	if customerQuality < 1.1 {
		recs = append(recs, "Customer quality is budget-sensitive: offer value packs and loyalty rewards.")
	} else if customerQuality > 1.6 {
		recs = append(recs, "High-spend audience detected: premium positioning can materially increase revenue.")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// Score runs the feasibility revenue engine for a business type at a point
// described by its surrounding POIs:
//   - footfall from POI count + time of day + popularity
//   - customer quality index from the inferred crowd mix
//   - competition-aware conversion
//   - overcrowding penalty with a business-specific optimal range
//
// Pass UseCurrentHour to score against the wall clock. Output is fully
// deterministic for a fixed (pois, businessType, hour).
func Score(pois []models.OverpassElement, businessType string, hour int) ScoredResult {
	bt := NormalizeBusinessType(businessType)
	profile := ProfileFor(bt)

	if hour == UseCurrentHour {
		hour = time.Now().Hour()
	}
	timeMult, daypart := DaypartMultiplier(hour)

	poiCount := len(pois)
	popularitySignal := math.Min(1.5, float64(poiCount)/60.0)
	footfall := math.Max(minFootfall, (22+float64(poiCount)*2.8)*(1+popularitySignal*0.35)*timeMult)
	if poiCount == 0 {
		// No observed signal at all: hold footfall at the floor.
		footfall = minFootfall
	}

	mix := EstimateCustomerMix(pois)
	customerQuality := CustomerQualityIndex(mix)

	competition := CompetitionDensity(pois, bt)
	ratingFactor := 0.9 + math.Min(0.3, popularitySignal*0.2)

	optimalMax := math.Max(1, profile.OptimalMax)
	penalty := overloadPenalty(footfall, optimalMax, profile.Sensitivity)
	overloadRatio := math.Max(0, (footfall-optimalMax)/optimalMax)
	waitingPenalty := math.Min(0.35, overloadRatio*0.25)

	conversion := profile.BaseConv * (1 - competition*0.45) * ratingFactor * penalty * (1 - waitingPenalty)
	conversion = math.Max(0.02, math.Min(0.60, conversion))

	dynamicAvgSpend := profile.AvgSpend * (0.88 + 0.24*customerQuality)

	effectiveCustomers := footfall * conversion * customerQuality
	dailyRevenue := effectiveCustomers * dynamicAvgSpend
	monthlyRevenue := dailyRevenue * 30

	peakTimeMult := 1.35
	if daypart == "Evening Peak" {
		peakTimeMult = 1.15
	}
	peakHourRevenue := (dailyRevenue / 12.0) * peakTimeMult

	overloadRisk := int(math.Min(100, math.Max(0, overloadRatio*100)))

	potential := math.Min(100, footfall)*0.24 +
		(1-competition)*100*0.22 +
		math.Min(2.5, customerQuality)/2.5*100*0.20 +
		(1-math.Min(1.0, waitingPenalty*2))*100*0.18 +
		math.Min(1.0, ratingFactor)*100*0.16
	potentialScore := int(math.Max(0, math.Min(100, math.Round(potential))))

	// An empty snapshot carries no evidence of demand, so it can never
	// classify better than Weak.
	health := "Weak"
	if poiCount > 0 {
		if potentialScore >= 78 && overloadRisk < 60 {
			health = "Strong"
		} else if potentialScore >= 55 {
			health = "Moderate"
		}
	}

	result := ScoredResult{
		Daypart:            daypart,
		Footfall:           round2(footfall),
		ConversionRate:     round4(conversion),
		CustomerQuality:    round3(customerQuality),
		CustomerMix:        mix,
		DynamicAvgSpend:    round2(dynamicAvgSpend),
		EffectiveCustomers: round2(effectiveCustomers),
		DailyRevenue:       round2(dailyRevenue),
		MonthlyRevenue:     round2(monthlyRevenue),
		PeakHourRevenue:    round2(peakHourRevenue),
		OverloadRisk:       overloadRisk,
		PotentialScore:     potentialScore,
		BusinessHealth:     health,
	}
	result.Recommendations = recommendations(result.OverloadRisk, conversion, customerQuality)
	return result
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
func round6(v float64) float64 { return math.Round(v*1000000) / 1000000 }
