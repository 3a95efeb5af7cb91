package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bizsense-server/models"
)

// stubGeocodingAPI serves canned places.
type stubGeocodingAPI struct {
	places []models.NominatimPlace
	err    error
}

func (s *stubGeocodingAPI) Search(query string, limit int) ([]models.NominatimPlace, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.places) {
		return s.places[:limit], nil
	}
	return s.places, nil
}

func TestSearchLocations_Success(t *testing.T) {
	handler := NewSearchHandler(&stubGeocodingAPI{places: []models.NominatimPlace{
		{PlaceID: 1, DisplayName: "Matunga, Mumbai", Lat: "19.0272", Lon: "72.8559", Class: "place", Type: "suburb"},
		{PlaceID: 2, DisplayName: "Broken Place", Lat: "not-a-number", Lon: "72.0", Class: "place", Type: "suburb"},
	}})

	req := httptest.NewRequest("POST", "/v1/locations/search",
		strings.NewReader(`{"query": "matunga"}`))
	rr := httptest.NewRecorder()

	handler.SearchLocations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	results, ok := body["results"].([]interface{})
	if !ok {
		t.Fatalf("Expected results array, got %v", body["results"])
	}
	// The unparsable place is skipped, not fatal.
	if len(results) != 1 {
		t.Fatalf("Expected 1 parsed result, got %d", len(results))
	}
	first := results[0].(map[string]interface{})
	if first["name"] != "Matunga, Mumbai" {
		t.Errorf("Unexpected name: %v", first["name"])
	}
	if first["latitude"] != 19.0272 {
		t.Errorf("Unexpected latitude: %v", first["latitude"])
	}
}

func TestSearchLocations_EmptyQuery(t *testing.T) {
	handler := NewSearchHandler(&stubGeocodingAPI{})

	for _, body := range []string{`{}`, `{"query": "   "}`} {
		req := httptest.NewRequest("POST", "/v1/locations/search", strings.NewReader(body))
		rr := httptest.NewRecorder()

		handler.SearchLocations(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for body %s, got %d", body, rr.Code)
		}
	}
}

func TestSearchLocations_GeocoderFailure(t *testing.T) {
	handler := NewSearchHandler(&stubGeocodingAPI{err: errors.New("nominatim down")})

	req := httptest.NewRequest("POST", "/v1/locations/search",
		strings.NewReader(`{"query": "matunga"}`))
	rr := httptest.NewRecorder()

	handler.SearchLocations(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("Expected 502 on geocoder failure, got %d", rr.Code)
	}
}
