package models

import "fmt"

// LatLng is a plain coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OverpassElement is a single tagged record returned by the Overpass API.
// Nodes carry lat/lon directly; ways and relations queried with "out center"
// carry a representative center instead. Whichever is present wins.
type OverpassElement struct {
	Type   string            `json:"type,omitempty"`
	ID     int64             `json:"id,omitempty"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *LatLng           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Coordinate resolves the element position. ok is false when the element has
// neither a direct coordinate nor a center; such elements are excluded from
// all spatial computation.
func (e *OverpassElement) Coordinate() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}

// Tag returns the value for a tag key, or "" when absent.
func (e *OverpassElement) Tag(key string) string {
	if e.Tags == nil {
		return ""
	}
	return e.Tags[key]
}

// Category returns the primary semantic category of the element: the first
// non-empty of amenity, shop, tourism.
func (e *OverpassElement) Category() string {
	for _, key := range []string{"amenity", "shop", "tourism"} {
		if v := e.Tag(key); v != "" {
			return v
		}
	}
	return ""
}

// Name returns the display name tag, or "Unknown".
func (e *OverpassElement) Name() string {
	if n := e.Tag("name"); n != "" {
		return n
	}
	return "Unknown"
}

func (e *OverpassElement) ToString() string {
	lat, lon, _ := e.Coordinate()
	return fmt.Sprintf("OverpassElement(id=%d, category=%s, lat=%f, lon=%f)",
		e.ID, e.Category(), lat, lon)
}

// OverpassResponse is the top-level Overpass API payload.
type OverpassResponse struct {
	Version   float64           `json:"version,omitempty"`
	Generator string            `json:"generator,omitempty"`
	Remark    string            `json:"remark,omitempty"`
	Elements  []OverpassElement `json:"elements"`
}
