package redis

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"bizsense-server/db"
	"bizsense-server/models"
)

const OVERPASS_CACHE_KEY_FORMAT_V1 = "overpass_cache_v1:%s"

// POICacheDAO caches Overpass responses keyed by a hash of the exact query
// text, so repeated map interactions do not hammer the public endpoints.
type POICacheDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewPOICacheDAO initializes a POICacheDAO with the Redis client.
func NewPOICacheDAO(client db.RedisClient, ttl time.Duration) *POICacheDAO {
	return &POICacheDAO{client: client, ttl: ttl}
}

func cacheKey(query string) string {
	sum := md5.Sum([]byte(query))
	return fmt.Sprintf(OVERPASS_CACHE_KEY_FORMAT_V1, hex.EncodeToString(sum[:]))
}

// GetCachedResponse returns the cached response for a query, or (nil, nil) on
// a cache miss.
func (dao *POICacheDAO) GetCachedResponse(query string) (*models.OverpassResponse, error) {
	str, err := dao.client.Get(cacheKey(query))
	if err != nil {
		// Treat any read failure as a miss; the caller will refetch.
		return nil, nil
	}
	var response models.OverpassResponse
	if err := json.Unmarshal([]byte(str), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached overpass response: %w", err)
	}
	return &response, nil
}

// SetCachedResponse stores a response for a query under the configured TTL.
func (dao *POICacheDAO) SetCachedResponse(query string, response *models.OverpassResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal overpass response: %w", err)
	}
	if err := dao.client.SetWithTTL(cacheKey(query), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to cache overpass response: %w", err)
	}
	return nil
}
