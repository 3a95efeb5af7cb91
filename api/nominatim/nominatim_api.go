package nominatim

import "bizsense-server/models"

// GeocodingAPI is the location-search boundary.
type GeocodingAPI interface {
	// Search resolves a free-text query to candidate places.
	Search(query string, limit int) ([]models.NominatimPlace, error)
}
