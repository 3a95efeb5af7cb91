package overpass

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"bizsense-server/api"
	"bizsense-server/models"
)

// OverpassApiClient queries the public Overpass endpoints, failing over to
// the next endpoint on transport errors, invalid payloads or rate-limit
// remarks.
type OverpassApiClient struct {
	endpoints  []string
	httpClient *api.HTTPClient
}

// NewOverpassApiClient creates a new instance of OverpassApiClient.
func NewOverpassApiClient(endpoints []string, httpClient *api.HTTPClient) *OverpassApiClient {
	return &OverpassApiClient{
		endpoints:  endpoints,
		httpClient: httpClient,
	}
}

// BuildQuery renders the Overpass QL for the radius and tag keys. Exported so
// the cache DAO can key on the exact query text.
func BuildQuery(lat, lon float64, radiusMeters int, tagKeys []string) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, key := range tagKeys {
		fmt.Fprintf(&b, "  node[%q](around:%d,%f,%f);\n", key, radiusMeters, lat, lon)
		fmt.Fprintf(&b, "  way[%q](around:%d,%f,%f);\n", key, radiusMeters, lat, lon)
		fmt.Fprintf(&b, "  relation[%q](around:%d,%f,%f);\n", key, radiusMeters, lat, lon)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

// GetPOIsNearby runs the query against each endpoint in order and returns the
// first valid response.
func (c *OverpassApiClient) GetPOIsNearby(lat, lon float64, radiusMeters int, tagKeys []string) (*models.OverpassResponse, error) {
	query := BuildQuery(lat, lon, radiusMeters, tagKeys)

	var lastErr error
	for _, endpoint := range c.endpoints {
		body, err := c.httpClient.PostForm(endpoint, url.Values{"data": {query}})
		if err != nil {
			log.Printf("[OverpassApiClient] endpoint %s failed: %v", endpoint, err)
			lastErr = err
			continue
		}

		var response models.OverpassResponse
		if err := json.Unmarshal(body, &response); err != nil {
			log.Printf("[OverpassApiClient] endpoint %s returned invalid JSON: %v", endpoint, err)
			lastErr = fmt.Errorf("invalid overpass response: %w", err)
			continue
		}

		// Overpass reports rate limiting and server trouble in the remark
		// field of an otherwise valid payload.
		if response.Remark != "" {
			log.Printf("[OverpassApiClient] endpoint %s remark: %s", endpoint, response.Remark)
			lastErr = errors.New(response.Remark)
			continue
		}

		return &response, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no overpass endpoints configured")
	}
	return nil, fmt.Errorf("all overpass endpoints failed: %w", lastErr)
}
