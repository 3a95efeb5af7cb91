package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"bizsense-server/models"
)

// ReadOverpassResponseFromJSON loads an OverpassResponse from JSON on disk.
func ReadOverpassResponseFromJSON(filePath string) (*models.OverpassResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.OverpassResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OverpassResponse: %w", err)
	}
	return &resp, nil
}

// ReadNominatimResponseFromJSON loads Nominatim search results from JSON on disk.
func ReadNominatimResponseFromJSON(filePath string) ([]models.NominatimPlace, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var places []models.NominatimPlace
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nominatim places: %w", err)
	}
	return places, nil
}

// PrintOverpassResponsePartially prints key fields of an OverpassResponse.
func PrintOverpassResponsePartially(resp *models.OverpassResponse) {
	fmt.Printf("Generator: %s\n", resp.Generator)
	fmt.Printf("Elements: %d\n", len(resp.Elements))
	if len(resp.Elements) > 0 {
		e := resp.Elements[0]
		lat, lon, _ := e.Coordinate()
		fmt.Printf("First element: %s (%s) at (%.6f, %.6f)\n", e.Name(), e.Category(), lat, lon)
	}
}
