package scoring

import (
	"fmt"
	"sort"

	"bizsense-server/models"
)

// Intensity is a crowd-density tier for a sector.
type Intensity string

const (
	IntensityHigh   Intensity = "high"
	IntensityMedium Intensity = "medium"
	IntensityLow    Intensity = "low"
)

const highIntensityThreshold = 15
const mediumIntensityThreshold = 5

// IntensityArea is an aggregated sector: its centroid, member count and grid
// key.
type IntensityArea struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int     `json:"count"`
	Sector    string  `json:"sector"`
}

// SectorAnalysis groups the sectors of a disk around a center by intensity
// tier.
type SectorAnalysis struct {
	High   []IntensityArea `json:"high_intensity"`
	Medium []IntensityArea `json:"medium_intensity"`
	Low    []IntensityArea `json:"low_intensity"`
}

// Dominant returns the strongest tier present: high beats medium beats low.
func (a *SectorAnalysis) Dominant() Intensity {
	if len(a.High) > 0 {
		return IntensityHigh
	}
	if len(a.Medium) > 0 {
		return IntensityMedium
	}
	return IntensityLow
}

// ClassifyIntensity tiers a sector by its member count.
func ClassifyIntensity(count int) Intensity {
	if count >= highIntensityThreshold {
		return IntensityHigh
	}
	if count >= mediumIntensityThreshold {
		return IntensityMedium
	}
	return IntensityLow
}

type sectorKey struct {
	distBand  int
	angleBand int
}

// Sectorize partitions the POIs within radiusMeters of the center into a
// 3x3 grid of distance bands x 120 degree wedges, then tiers each populated
// sector by member count. When no sector forms at all (empty or fully
// unresolvable input) it emits a single synthetic high-intensity entry at the
// center carrying the total POI count, so downstream logic always has at
// least one area; that count can be zero and callers must tolerate it.
func Sectorize(centerLat, centerLon float64, pois []models.OverpassElement, radiusMeters float64) SectorAnalysis {
	bandSize := radiusMeters / 3

	sectors := make(map[sectorKey][]models.LatLng)
	for i := range pois {
		lat, lon, ok := pois[i].Coordinate()
		if !ok {
			continue
		}

		distance := DistanceMeters(centerLat, centerLon, lat, lon)
		if distance > radiusMeters {
			continue
		}

		key := sectorKey{
			distBand:  clampBand(int(distance / bandSize)),
			angleBand: clampBand(int(SectorAngle(centerLat, centerLon, lat, lon) / 120)),
		}
		sectors[key] = append(sectors[key], models.LatLng{Lat: lat, Lon: lon})
	}

	var analysis SectorAnalysis
	for key, members := range sectors {
		count := len(members)
		var sumLat, sumLon float64
		for _, m := range members {
			sumLat += m.Lat
			sumLon += m.Lon
		}
		area := IntensityArea{
			Latitude:  sumLat / float64(count),
			Longitude: sumLon / float64(count),
			Count:     count,
			Sector:    fmt.Sprintf("%d_%d", key.distBand, key.angleBand),
		}
		switch ClassifyIntensity(count) {
		case IntensityHigh:
			analysis.High = append(analysis.High, area)
		case IntensityMedium:
			analysis.Medium = append(analysis.Medium, area)
		default:
			analysis.Low = append(analysis.Low, area)
		}
	}

	if len(analysis.High) == 0 && len(analysis.Medium) == 0 && len(analysis.Low) == 0 {
		analysis.High = []IntensityArea{{
			Latitude:  centerLat,
			Longitude: centerLon,
			Count:     len(pois),
			Sector:    "center",
		}}
	}

	sortAreas(analysis.High)
	sortAreas(analysis.Medium)
	sortAreas(analysis.Low)
	return analysis
}

func clampBand(band int) int {
	if band > 2 {
		return 2
	}
	if band < 0 {
		return 0
	}
	return band
}

// sortAreas orders densest first so map iteration order never leaks into
// responses.
func sortAreas(areas []IntensityArea) {
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		return areas[i].Sector < areas[j].Sector
	})
}
