package models

// NominatimPlace is a single geocoding result from the Nominatim search API.
type NominatimPlace struct {
	PlaceID     int64  `json:"place_id,omitempty"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class,omitempty"`
	Type        string `json:"type,omitempty"`
}
