package scoring

import (
	"testing"

	"bizsense-server/models"
)

func TestGenerateCandidates_TopNClamped(t *testing.T) {
	pois := repeatPOIs(30, map[string]string{"amenity": "restaurant"})

	tests := []struct {
		topN int
		want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{8, 3},
	}
	for _, test := range tests {
		got := GenerateCandidates(19.0760, 72.8777, pois, test.topN)
		if len(got) != test.want {
			t.Errorf("topN=%d: expected %d candidates, got %d", test.topN, test.want, len(got))
		}
	}
}

func TestGenerateCandidates_RankedByScoreDescending(t *testing.T) {
	// Pile POIs near one offset so candidate scores actually differ.
	pois := clusterAt(19.0760+0.008, 72.8777+0.0045, 40)
	candidates := GenerateCandidates(19.0760, 72.8777, pois, 3)

	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[i-1].Score {
			t.Errorf("Candidates not sorted by score desc: %f after %f",
				candidates[i].Score, candidates[i-1].Score)
		}
	}
}

func TestGenerateCandidates_ScoreBounds(t *testing.T) {
	inputs := [][]models.OverpassElement{
		nil,
		repeatPOIs(5, map[string]string{"amenity": "cafe"}),
		repeatPOIs(200, map[string]string{"shop": "supermarket"}),
	}
	for i, pois := range inputs {
		for _, c := range GenerateCandidates(19.0760, 72.8777, pois, 3) {
			if c.Score < 0 || c.Score > 100 {
				t.Errorf("Case %d: score %f out of [0, 100]", i, c.Score)
			}
			if c.Name == "" || c.BusinessType == "" {
				t.Errorf("Case %d: candidate missing name or business type: %+v", i, c)
			}
			if c.EstimatedRevenue < 0 {
				t.Errorf("Case %d: negative revenue %f", i, c.EstimatedRevenue)
			}
		}
	}
}

func TestGenerateCandidates_DenseOffsetWins(t *testing.T) {
	// The POI cluster sits ~2.7km north of the base point, inside the local
	// radius of the {+0.012, 0} offset only. That candidate should win.
	pois := clusterAt(19.0760+0.024, 72.8777, 40)

	candidates := GenerateCandidates(19.0760, 72.8777, pois, 1)
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}

	winner := candidates[0]
	if DistanceMeters(winner.Lat, winner.Lng, 19.0760+0.012, 72.8777) > 50 {
		t.Errorf("Expected the offset covering the cluster to win, got candidate at (%f, %f)",
			winner.Lat, winner.Lng)
	}
}

func TestGenerateCandidates_LocalFactorsPresent(t *testing.T) {
	pois := append(
		repeatPOIs(20, map[string]string{"amenity": "restaurant"}),
		repeatPOIs(4, map[string]string{"highway": "bus_stop"})...)

	candidates := GenerateCandidates(19.0760, 72.8777, pois, 3)
	for _, c := range candidates {
		f := c.Factors
		for name, v := range map[string]float64{
			"footfall_potential":  f.FootfallPotential,
			"competition_density": f.CompetitionDensity,
			"spending_power":      f.SpendingPower,
			"area_growth":         f.AreaGrowth,
			"demand_supply_gap":   f.DemandSupplyGap,
		} {
			if v < 0 || v > 100 {
				t.Errorf("Factor %s = %f out of [0, 100]", name, v)
			}
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fast_food", "Fast Food"},
		{"cafe", "Cafe"},
		{"clothing_store", "Clothing Store"},
		{"", ""},
	}
	for _, test := range tests {
		if got := TitleCase(test.in); got != test.want {
			t.Errorf("TitleCase(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
