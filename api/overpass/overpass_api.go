package overpass

import "bizsense-server/models"

// OverpassAPI is the POI provider boundary. The real client talks to the
// public Overpass endpoints; the mock reads a fixture.
type OverpassAPI interface {
	// GetPOIsNearby fetches all elements carrying one of the given tag keys
	// within radiusMeters of the point, with representative centers for ways
	// and relations.
	GetPOIsNearby(lat, lon float64, radiusMeters int, tagKeys []string) (*models.OverpassResponse, error)
}
