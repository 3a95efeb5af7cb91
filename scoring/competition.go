package scoring

import (
	"strings"

	"bizsense-server/models"
)

// CompetitionDensity measures the fraction of POIs whose category matches the
// given business type (substring match in either direction). An empty POI set
// scores 0; a blank business type scores a neutral 0.2.
func CompetitionDensity(pois []models.OverpassElement, bt BusinessType) float64 {
	if len(pois) == 0 {
		return 0.0
	}
	needle := string(bt)
	if needle == "" || needle == string(DefaultBusinessType) {
		return 0.2
	}

	same := 0
	for i := range pois {
		category := strings.ReplaceAll(strings.ToLower(pois[i].Category()), " ", "_")
		if category == "" {
			continue
		}
		if category == needle || strings.Contains(category, needle) || strings.Contains(needle, category) {
			same++
		}
	}

	density := float64(same) / float64(len(pois))
	if density > 1.0 {
		density = 1.0
	}
	return density
}
