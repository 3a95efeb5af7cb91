package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"bizsense-server/models"
)

// candidateOffsets are the fixed lat/lon deltas applied to the base point.
// The first candidate is the base point itself. The values are a behavioral
// constant, not an even ring; keep them verbatim.
var candidateOffsets = [][2]float64{
	{0.0000, 0.0000}, {0.0080, 0.0045}, {-0.0080, -0.0040},
	{0.0065, -0.0060}, {-0.0060, 0.0065}, {0.0120, 0.0000},
	{0.0000, -0.0120}, {-0.0110, 0.0020},
}

// localRadiusMeters bounds each candidate's POI neighborhood.
const localRadiusMeters = 1700

// LocationFactors are the 0-100 quality components of a candidate site.
type LocationFactors struct {
	FootfallPotential  float64 `json:"footfall_potential"`
	CompetitionDensity float64 `json:"competition_density"`
	SpendingPower      float64 `json:"spending_power"`
	AreaGrowth         float64 `json:"area_growth"`
	DemandSupplyGap    float64 `json:"demand_supply_gap"`
}

// Candidate is a synthetic offset site scored against its local POI
// neighborhood.
type Candidate struct {
	Lat              float64         `json:"lat"`
	Lng              float64         `json:"lng"`
	Name             string          `json:"name"`
	BusinessType     string          `json:"business_type"`
	Score            float64         `json:"score"`
	EstimatedRevenue float64         `json:"estimated_revenue"`
	Factors          LocationFactors `json:"feasibility_factors"`
	RevenueData      ScoredResult    `json:"revenue_data"`
}

var growthHighways = map[string]bool{"bus_stop": true, "primary": true}

// locationFactors derives the quality components from a candidate's local POI
// set.
func locationFactors(local []models.OverpassElement) LocationFactors {
	total := float64(len(local))
	if total < 1 {
		total = 1
	}

	mix := EstimateCustomerMix(local)
	spendingPower := math.Min(100, CustomerQualityIndex(mix)/2.5*100)

	var competitors int
	for i := range local {
		if local[i].Tag("amenity") != "" || local[i].Tag("shop") != "" {
			competitors++
		}
	}
	competitionDensity := math.Min(100, float64(competitors)/total*100)

	var transport int
	for i := range local {
		if local[i].Tag("public_transport") != "" ||
			growthHighways[local[i].Tag("highway")] ||
			local[i].Tag("railway") != "" {
			transport++
		}
	}
	areaGrowth := math.Min(100, (float64(transport)+total*0.08)/total*100)

	footfallPotential := math.Min(100, total*2.2)
	demandSupplyGap := math.Max(0, math.Min(100,
		footfallPotential*0.75-competitionDensity*0.55+spendingPower*0.25))

	return LocationFactors{
		FootfallPotential:  round2(footfallPotential),
		CompetitionDensity: round2(competitionDensity),
		SpendingPower:      round2(spendingPower),
		AreaGrowth:         round2(areaGrowth),
		DemandSupplyGap:    round2(demandSupplyGap),
	}
}

// recommendedBusiness picks a business type for a candidate from its factor
// profile.
func recommendedBusiness(f LocationFactors) BusinessType {
	if f.SpendingPower > 70 && f.CompetitionDensity < 55 {
		return "restaurant"
	}
	if f.DemandSupplyGap > 55 && f.FootfallPotential > 40 {
		return "cafe"
	}
	if f.CompetitionDensity > 70 {
		return "pharmacy"
	}
	return "supermarket"
}

// GenerateCandidates scores the fixed ring of offset points around a base
// coordinate and returns the best ones, ranked by score descending. topN is
// clamped to [1,3].
func GenerateCandidates(baseLat, baseLon float64, pois []models.OverpassElement, topN int) []Candidate {
	candidates := make([]Candidate, 0, len(candidateOffsets))

	for i, offset := range candidateOffsets {
		cLat := baseLat + offset[0]
		cLon := baseLon + offset[1]

		var local []models.OverpassElement
		for j := range pois {
			lat, lon, ok := pois[j].Coordinate()
			if !ok {
				continue
			}
			if DistanceMeters(cLat, cLon, lat, lon) <= localRadiusMeters {
				local = append(local, pois[j])
			}
		}

		factors := locationFactors(local)
		score := factors.FootfallPotential*0.30 +
			(100-factors.CompetitionDensity)*0.22 +
			factors.SpendingPower*0.18 +
			factors.AreaGrowth*0.15 +
			factors.DemandSupplyGap*0.15
		score = math.Max(0, math.Min(100, score))

		business := recommendedBusiness(factors)
		revenue := Score(local, string(business), UseCurrentHour)

		candidates = append(candidates, Candidate{
			Lat:              round6(cLat),
			Lng:              round6(cLon),
			Name:             fmt.Sprintf("AI Zone %d", i+1),
			BusinessType:     TitleCase(string(business)),
			Score:            math.Round(score*10) / 10,
			EstimatedRevenue: revenue.MonthlyRevenue,
			Factors:          factors,
			RevenueData:      revenue,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if topN < 1 {
		topN = 1
	}
	if topN > 3 {
		topN = 3
	}
	return candidates[:topN]
}

// TitleCase renders a normalized key like "fast_food" as "Fast Food".
func TitleCase(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
