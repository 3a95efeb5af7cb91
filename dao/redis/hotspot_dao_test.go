package redis

import (
	"context"
	"encoding/json"
	"testing"

	"bizsense-server/db"
	"bizsense-server/scoring"
)

func TestRedisHotspotDAO_UpsertHotspot_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHotspotDAO(mockClient)

	testHotspot := Hotspot{
		ID:               "19.0840_72.8822_AI Zone 2",
		Lat:              19.0840,
		Lng:              72.8822,
		BusinessType:     "Cafe",
		Score:            72.4,
		EstimatedRevenue: 485000,
		Factors: scoring.LocationFactors{
			FootfallPotential:  66,
			CompetitionDensity: 40,
			SpendingPower:      61,
			AreaGrowth:         22,
			DemandSupplyGap:    43,
		},
	}

	// Act
	err := dao.UpsertHotspot(testHotspot)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Verify data stored in mock Redis
	expectedKey := "hotspots_geo_member_v1:19.0840_72.8822_AI Zone 2"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	// Verify JSON content
	var stored Hotspot
	if err := json.Unmarshal([]byte(storedValue), &stored); err != nil {
		t.Fatalf("Failed to unmarshal stored hotspot data: %v", err)
	}

	if stored.ID != testHotspot.ID {
		t.Errorf("Expected ID %s, got %s", testHotspot.ID, stored.ID)
	}
	if stored.Score != testHotspot.Score {
		t.Errorf("Expected Score %f, got %f", testHotspot.Score, stored.Score)
	}
}

func TestRedisHotspotDAO_GetNearbyHotspots_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHotspotDAO(mockClient)

	_ = dao.UpsertHotspot(Hotspot{ID: "spot1", Lat: 19.0760, Lng: 72.8777, BusinessType: "Cafe"})
	_ = dao.UpsertHotspot(Hotspot{ID: "spot2", Lat: 19.0770, Lng: 72.8790, BusinessType: "Supermarket"})

	// Act
	hotspots, err := dao.GetNearbyHotspots(19.0760, 72.8777, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(hotspots) != 2 {
		t.Errorf("Expected 2 hotspots, got %d", len(hotspots))
	}

	expectedIDs := map[string]bool{"spot1": true, "spot2": true}
	for _, h := range hotspots {
		if !expectedIDs[h.ID] {
			t.Errorf("Unexpected hotspot ID: %s", h.ID)
		}
	}
}

func TestRedisHotspotDAO_GetNearbyHotspots_NoResults(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHotspotDAO(mockClient)

	// Act
	hotspots, err := dao.GetNearbyHotspots(19.0760, 72.8777, 10)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(hotspots) != 0 {
		t.Errorf("Expected no hotspots, got %d", len(hotspots))
	}
}

func TestRedisHotspotDAO_ListAllHotspotIDs(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisHotspotDAO(mockClient)

	_ = dao.UpsertHotspot(Hotspot{ID: "spot1", Lat: 19.0760, Lng: 72.8777})
	_ = dao.UpsertHotspot(Hotspot{ID: "spot2", Lat: 28.6139, Lng: 77.2090})

	ids, err := dao.ListAllHotspotIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 IDs, got %d: %v", len(ids), ids)
	}

	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	if !found["spot1"] || !found["spot2"] {
		t.Errorf("Missing expected IDs in %v", ids)
	}
}
