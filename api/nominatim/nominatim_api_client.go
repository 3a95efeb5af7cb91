package nominatim

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"bizsense-server/api"
	"bizsense-server/config"
	"bizsense-server/models"
)

// NominatimApiClient searches the OpenStreetMap Nominatim API, bounded to the
// configured country viewbox.
type NominatimApiClient struct {
	*api.HTTPClient
}

// NewNominatimApiClient creates a new instance of NominatimApiClient
func NewNominatimApiClient(httpClient *api.HTTPClient) *NominatimApiClient {
	return &NominatimApiClient{
		HTTPClient: httpClient,
	}
}

// Search resolves a free-text query to candidate places.
func (c *NominatimApiClient) Search(query string, limit int) ([]models.NominatimPlace, error) {
	if limit <= 0 || limit > config.NOMINATIM_RESULT_LIMIT {
		limit = config.NOMINATIM_RESULT_LIMIT
	}

	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"limit":          {strconv.Itoa(limit)},
		"addressdetails": {"1"},
		"countrycodes":   {config.NOMINATIM_COUNTRY_CODES},
		"viewbox":        {config.NOMINATIM_VIEWBOX},
		"bounded":        {"1"},
	}

	body, err := c.Get("/search", params)
	if err != nil {
		return nil, fmt.Errorf("nominatim search failed: %w", err)
	}

	var places []models.NominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nominatim response: %w", err)
	}
	return places, nil
}
