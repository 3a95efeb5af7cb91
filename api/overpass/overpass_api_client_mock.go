package overpass

import (
	"fmt"

	"bizsense-server/config"
	"bizsense-server/models"
	"bizsense-server/util"
)

// OverpassApiClientMock serves a fixture response regardless of the query.
type OverpassApiClientMock struct {
}

// NewOverpassApiClientMock creates a new instance of OverpassApiClientMock
func NewOverpassApiClientMock() *OverpassApiClientMock {
	return &OverpassApiClientMock{}
}

// GetPOIsNearby returns the fixture POI snapshot.
func (c *OverpassApiClientMock) GetPOIsNearby(lat, lon float64, radiusMeters int, tagKeys []string) (*models.OverpassResponse, error) {
	response, err := util.ReadOverpassResponseFromJSON(config.GetResourcePath(config.OVERPASS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read overpass response from json")
		return nil, err
	}
	return response, nil
}
