package nominatim

import (
	"fmt"

	"bizsense-server/config"
	"bizsense-server/models"
	"bizsense-server/util"
)

// NominatimApiClientMock serves a fixture response regardless of the query.
type NominatimApiClientMock struct {
}

// NewNominatimApiClientMock creates a new instance of NominatimApiClientMock
func NewNominatimApiClientMock() *NominatimApiClientMock {
	return &NominatimApiClientMock{}
}

// Search returns the fixture geocoding results, truncated to limit.
func (c *NominatimApiClientMock) Search(query string, limit int) ([]models.NominatimPlace, error) {
	places, err := util.ReadNominatimResponseFromJSON(config.GetResourcePath(config.NOMINATIM_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read nominatim response from json")
		return nil, err
	}
	if limit > 0 && limit < len(places) {
		places = places[:limit]
	}
	return places, nil
}
