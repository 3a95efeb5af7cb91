package scoring

import (
	"math"
	"testing"

	"bizsense-server/models"
)

func poiWithTags(lat, lon float64, tags map[string]string) models.OverpassElement {
	return models.OverpassElement{
		Type: "node",
		Lat:  &lat,
		Lon:  &lon,
		Tags: tags,
	}
}

func repeatPOIs(n int, tags map[string]string) []models.OverpassElement {
	pois := make([]models.OverpassElement, 0, n)
	for i := 0; i < n; i++ {
		pois = append(pois, poiWithTags(19.0760+float64(i)*0.0001, 72.8777, tags))
	}
	return pois
}

func mixSum(mix CustomerMix) float64 {
	return mix.Students + mix.Professionals + mix.Families + mix.Tourists
}

func TestEstimateCustomerMix_SumsToOne(t *testing.T) {
	inputs := [][]models.OverpassElement{
		nil,
		repeatPOIs(1, map[string]string{"amenity": "school"}),
		repeatPOIs(10, map[string]string{"amenity": "bank"}),
		repeatPOIs(50, map[string]string{"shop": "supermarket"}),
		append(repeatPOIs(5, map[string]string{"tourism": "attraction"}),
			repeatPOIs(5, map[string]string{"amenity": "park"})...),
	}

	for i, pois := range inputs {
		mix := EstimateCustomerMix(pois)
		if math.Abs(mixSum(mix)-1.0) > 1e-6 {
			t.Errorf("Case %d: mix sums to %f, want 1.0", i, mixSum(mix))
		}
	}
}

func TestEstimateCustomerMix_EmptyInputUsesBaseline(t *testing.T) {
	mix := EstimateCustomerMix(nil)

	// Baseline ratios 0.10 : 0.16 : 0.14 : 0.08 normalized.
	const sum = 0.10 + 0.16 + 0.14 + 0.08
	if math.Abs(mix.Students-0.10/sum) > 1e-9 {
		t.Errorf("Students = %f, want %f", mix.Students, 0.10/sum)
	}
	if math.Abs(mix.Professionals-0.16/sum) > 1e-9 {
		t.Errorf("Professionals = %f, want %f", mix.Professionals, 0.16/sum)
	}
	if math.Abs(mix.Families-0.14/sum) > 1e-9 {
		t.Errorf("Families = %f, want %f", mix.Families, 0.14/sum)
	}
	if math.Abs(mix.Tourists-0.08/sum) > 1e-9 {
		t.Errorf("Tourists = %f, want %f", mix.Tourists, 0.08/sum)
	}
}

func TestEstimateCustomerMix_TagsShiftShares(t *testing.T) {
	schools := EstimateCustomerMix(repeatPOIs(10, map[string]string{"amenity": "college"}))
	banks := EstimateCustomerMix(repeatPOIs(10, map[string]string{"amenity": "bank"}))

	if schools.Students <= banks.Students {
		t.Errorf("College-heavy area should skew student share: %f vs %f",
			schools.Students, banks.Students)
	}
	if banks.Professionals <= schools.Professionals {
		t.Errorf("Bank-heavy area should skew professional share: %f vs %f",
			banks.Professionals, schools.Professionals)
	}
}

func TestEstimateCustomerMix_TourismDominates(t *testing.T) {
	mix := EstimateCustomerMix(repeatPOIs(20, map[string]string{"tourism": "attraction"}))
	if mix.Tourists <= mix.Students || mix.Tourists <= mix.Families {
		t.Errorf("Tourism-only area should be tourist dominated: %+v", mix)
	}
}

func TestCustomerQualityIndex_Bounds(t *testing.T) {
	// CQI is a convex combination of the archetype multipliers, so it can
	// never leave [0.6, 2.5].
	inputs := [][]models.OverpassElement{
		nil,
		repeatPOIs(30, map[string]string{"amenity": "school"}),
		repeatPOIs(30, map[string]string{"tourism": "museum"}),
		repeatPOIs(30, map[string]string{"amenity": "restaurant"}),
	}
	for i, pois := range inputs {
		cqi := CustomerQualityIndex(EstimateCustomerMix(pois))
		if cqi < 0.6 || cqi > 2.5 {
			t.Errorf("Case %d: CQI %f out of [0.6, 2.5]", i, cqi)
		}
	}
}

func TestCustomerQualityIndex_TouristsBeatStudents(t *testing.T) {
	touristCQI := CustomerQualityIndex(EstimateCustomerMix(
		repeatPOIs(30, map[string]string{"tourism": "attraction"})))
	studentCQI := CustomerQualityIndex(EstimateCustomerMix(
		repeatPOIs(30, map[string]string{"amenity": "university"})))

	if touristCQI <= studentCQI {
		t.Errorf("Tourist area CQI %f should exceed student area CQI %f",
			touristCQI, studentCQI)
	}
}
