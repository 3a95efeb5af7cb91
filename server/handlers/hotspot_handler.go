package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	redisdao "bizsense-server/dao/redis"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// HotspotHandler serves the pre-scored candidate sites kept in the geo index.
type HotspotHandler struct {
	hotspotDao *redisdao.RedisHotspotDAO
}

func NewHotspotHandler(hotspotDao *redisdao.RedisHotspotDAO) *HotspotHandler {
	return &HotspotHandler{hotspotDao: hotspotDao}
}

// GetHotspotsNearby handles GET /v1/hotspots/nearby.
// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius_km(float)}
func (h *HotspotHandler) GetHotspotsNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	hotspots, err := h.hotspotDao.GetNearbyHotspots(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby hotspots:", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"hotspots": hotspots,
	})
}

func (h *HotspotHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LON_QUERY_ARG)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_QUERY_ARG)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
