package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bizsense-server/api/nominatim"
)

// SearchHandler resolves free-text location queries through the geocoder.
type SearchHandler struct {
	geocodingAPI nominatim.GeocodingAPI
}

func NewSearchHandler(geocodingAPI nominatim.GeocodingAPI) *SearchHandler {
	return &SearchHandler{geocodingAPI: geocodingAPI}
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchResult is the flattened geocoder hit returned to the caller.
type SearchResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Class     string  `json:"class"`
	Type      string  `json:"type"`
}

// SearchLocations handles POST /v1/locations/search.
func (h *SearchHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	limit := req.Limit
	if limit < 1 || limit > 10 {
		limit = 5
	}

	places, err := h.geocodingAPI.Search(query, limit)
	if err != nil {
		log.Println("Error searching locations:", err)
		writeError(w, http.StatusBadGateway, "Unable to search locations")
		return
	}

	results := make([]SearchResult, 0, len(places))
	for _, p := range places {
		lat, errLat := strconv.ParseFloat(p.Lat, 64)
		lon, errLon := strconv.ParseFloat(p.Lon, 64)
		if errLat != nil || errLon != nil {
			log.Printf("Skipping place with bad coordinates: %q,%q", p.Lat, p.Lon)
			continue
		}
		results = append(results, SearchResult{
			Name:      p.DisplayName,
			Latitude:  lat,
			Longitude: lon,
			Class:     p.Class,
			Type:      p.Type,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": results,
	})
}
