package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Overpass API endpoints, tried in order until one answers with valid JSON.
var OVERPASS_URLS = []string{
	"https://overpass-api.de/api/interpreter",
	"https://lz4.overpass-api.de/api/interpreter",
	"https://z.overpass-api.de/api/interpreter",
	"https://overpass.openstreetmap.ru/cgi/interpreter",
}

const OVERPASS_TIMEOUT_SECONDS = 30
const OVERPASS_USER_AGENT = "BizSenseServer/1.0"

// Cached Overpass responses expire after this long so we stay under the
// public endpoints' rate limits.
const OVERPASS_CACHE_TTL = 15 * time.Minute

// Nominatim geocoding (India-only search window).
const NOMINATIM_ENDPOINT_BASE = "https://nominatim.openstreetmap.org"
const NOMINATIM_COUNTRY_CODES = "in"
const NOMINATIM_VIEWBOX = "68,37.5,97.5,6.5"
const NOMINATIM_RESULT_LIMIT = 5

// Analysis radii (meters)
const ANALYSIS_RADIUS_METERS = 5000
const CANDIDATE_SEARCH_RADIUS_METERS = 8000

// Fallback base point when a caller asks for best locations without
// coordinates (Mumbai).
const DEFAULT_BASE_LAT = 19.0760
const DEFAULT_BASE_LON = 72.8777

// Hotspot refresher config
const HOTSPOT_REFRESHER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const OVERPASS_RESPONSE_RESOURCE = "overpass_response.json"
const NOMINATIM_RESPONSE_RESOURCE = "nominatim_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
