package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"bizsense-server/db"
	"bizsense-server/scoring"
)

const HOTSPOTS_GEO_KEY_V1 = "hotspots_geo_v1"
const HOTSPOTS_GEO_MEMBER_FORMAT_V1 = "hotspots_geo_member_v1:%s"

// Hotspot is a pre-scored candidate site kept in the geo index by the
// refresher job.
type Hotspot struct {
	ID               string                  `json:"id"`
	Lat              float64                 `json:"lat"`
	Lng              float64                 `json:"lng"`
	BusinessType     string                  `json:"business_type"`
	Score            float64                 `json:"score"`
	EstimatedRevenue float64                 `json:"estimated_revenue"`
	Factors          scoring.LocationFactors `json:"feasibility_factors"`
}

// RedisHotspotDAO handles hotspot operations using Redis.
type RedisHotspotDAO struct {
	client db.RedisClient
}

// NewRedisHotspotDAO initializes a RedisHotspotDAO with the Redis client.
func NewRedisHotspotDAO(client db.RedisClient) *RedisHotspotDAO {
	return &RedisHotspotDAO{client: client}
}

// UpsertHotspot stores the hotspot as a geolocation with its JSON data.
func (dao *RedisHotspotDAO) UpsertHotspot(h Hotspot) error {
	ctx := dao.client.GetContext()
	memberKey := fmt.Sprintf(HOTSPOTS_GEO_MEMBER_FORMAT_V1, h.ID)
	return dao.client.AddLocationWithJSON(ctx, HOTSPOTS_GEO_KEY_V1, memberKey, h.Lat, h.Lng, h)
}

// GetNearbyHotspots retrieves hotspots within a given radius (km).
func (dao *RedisHotspotDAO) GetNearbyHotspots(lat, lon, radiusKm float64) ([]Hotspot, error) {
	hotspotsJSON, err := dao.client.GetLocationsWithinRadius(HOTSPOTS_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisHotspotDAO] failed to get hotspots: %v", err)
	}

	hotspots := make([]Hotspot, len(hotspotsJSON))
	for i, hotspotJSON := range hotspotsJSON {
		if err := json.Unmarshal([]byte(hotspotJSON), &hotspots[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal hotspot JSON: %v", err)
		}
	}
	return hotspots, nil
}

// ListAllHotspotIDs returns all hotspot IDs present in the geo index.
func (dao *RedisHotspotDAO) ListAllHotspotIDs() ([]string, error) {
	pattern := fmt.Sprintf(HOTSPOTS_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotspot geo keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	prefix := fmt.Sprintf(HOTSPOTS_GEO_MEMBER_FORMAT_V1, "")
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}
