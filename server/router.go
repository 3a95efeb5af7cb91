package server

import (
	"bizsense-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	analysisHandler *handlers.AnalysisHandler
	searchHandler   *handlers.SearchHandler
	hotspotHandler  *handlers.HotspotHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	analysisHandler *handlers.AnalysisHandler,
	searchHandler *handlers.SearchHandler,
	hotspotHandler *handlers.HotspotHandler,
	router *mux.Router) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		searchHandler:   searchHandler,
		hotspotHandler:  hotspotHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/locations/analyze", r.analysisHandler.AnalyzeLocation).Methods("POST")
	r.router.HandleFunc("/v1/crowd/intensity", r.analysisHandler.AnalyzeCrowdIntensity).Methods("POST")
	r.router.HandleFunc("/v1/feasibility", r.analysisHandler.CheckFeasibility).Methods("POST")
	r.router.HandleFunc("/v1/places/popular", r.analysisHandler.FindPopularPlaces).Methods("POST")
	r.router.HandleFunc("/v1/locations/best", r.analysisHandler.GenerateBestLocations).Methods("POST")
	r.router.HandleFunc("/v1/locations/matching", r.analysisHandler.FindMatchingLocations).Methods("POST")
	r.router.HandleFunc("/v1/locations/search", r.searchHandler.SearchLocations).Methods("POST")

	r.router.HandleFunc("/v1/business-types", r.analysisHandler.GetBusinessTypes).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}
	r.router.HandleFunc("/v1/crowd/heatmap", r.analysisHandler.CrowdHeatmap).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius_km(float)}
	r.router.HandleFunc("/v1/hotspots/nearby", r.hotspotHandler.GetHotspotsNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.analysisHandler.Ping).Methods("GET")
}
