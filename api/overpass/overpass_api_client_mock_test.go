package overpass

import (
	"os"
	"testing"

	"bizsense-server/config"
	"bizsense-server/util"

	"github.com/stretchr/testify/assert"
)

func TestGetPOIsNearby_Mock(t *testing.T) {
	// Arrange
	os.Setenv("PROJECT_ROOT", "../..")
	defer os.Unsetenv("PROJECT_ROOT")

	client := NewOverpassApiClientMock()

	expectedResponse, err := util.ReadOverpassResponseFromJSON(
		config.GetResourcePath(config.OVERPASS_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetPOIsNearby(19.0760, 72.8777, 5000, []string{"amenity"})

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assert.Equal(t, expectedResponse, response, "Responses dont match")
	if len(response.Elements) == 0 {
		t.Error("Fixture should contain elements")
	}
}
