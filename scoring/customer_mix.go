package scoring

import "bizsense-server/models"

// CQI multipliers (spending power per customer archetype).
var cqiMultipliers = map[string]float64{
	"student":      0.6,
	"professional": 1.8,
	"family":       1.3,
	"tourist":      2.5,
	"resident":     1.0,
}

// CustomerMix is a probability distribution over customer archetypes. The
// four shares always sum to 1.
type CustomerMix struct {
	Students      float64 `json:"students"`
	Professionals float64 `json:"professionals"`
	Families      float64 `json:"families"`
	Tourists      float64 `json:"tourists"`
}

var studentAmenities = map[string]bool{
	"school": true, "college": true, "university": true,
}

var professionalAmenities = map[string]bool{
	"bank": true, "office": true, "restaurant": true, "cafe": true,
}

var familyShops = map[string]bool{
	"supermarket": true, "mall": true, "clothes": true,
	"clothing": true, "department_store": true,
}

var familyAmenities = map[string]bool{
	"park": true, "cinema": true, "hospital": true,
}

// EstimateCustomerMix infers the archetype distribution from POI tag
// frequencies. A baseline proportional to the POI count is added so sparse
// inputs still yield a non-degenerate mix; an empty input returns the
// baseline ratios normalized.
func EstimateCustomerMix(pois []models.OverpassElement) CustomerMix {
	total := float64(len(pois))
	if total < 1 {
		total = 1
	}

	var students, professionals, families, tourists float64
	for i := range pois {
		amenity := pois[i].Tag("amenity")
		shop := pois[i].Tag("shop")
		tourism := pois[i].Tag("tourism")

		if studentAmenities[amenity] {
			students += 2
		}
		if professionalAmenities[amenity] {
			professionals += 2
		}
		if familyShops[shop] {
			families += 2
		}
		if tourism != "" {
			tourists += 3
		}
		if familyAmenities[amenity] {
			families += 1
		}
	}

	// Baseline mix so sparse data still works.
	students += total * 0.10
	professionals += total * 0.16
	families += total * 0.14
	tourists += total * 0.08

	sum := students + professionals + families + tourists
	return CustomerMix{
		Students:      students / sum,
		Professionals: professionals / sum,
		Families:      families / sum,
		Tourists:      tourists / sum,
	}
}

// CustomerQualityIndex is the mix-weighted average of archetype spend
// multipliers.
func CustomerQualityIndex(mix CustomerMix) float64 {
	return mix.Students*cqiMultipliers["student"] +
		mix.Professionals*cqiMultipliers["professional"] +
		mix.Families*cqiMultipliers["family"] +
		mix.Tourists*cqiMultipliers["tourist"]
}
