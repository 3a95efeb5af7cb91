package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"bizsense-server/classifier"
	"bizsense-server/config"
	"bizsense-server/scoring"
	services "bizsense-server/service"
	"bizsense-server/util"
)

// analysisRequest is the shared JSON body for analysis endpoints. Coordinates
// accept both the long and short key forms.
type analysisRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	BusinessType   string   `json:"business_type"`
	Type           string   `json:"type"`
	CrowdIntensity string   `json:"crowd_intensity"`
	Hour           *int     `json:"hour"`
	TopN           *int     `json:"top_n"`
}

// coordinates resolves the lat/lon pair, validating presence and range.
func (r *analysisRequest) coordinates() (float64, float64, error) {
	lat := r.Latitude
	if lat == nil {
		lat = r.Lat
	}
	lon := r.Longitude
	if lon == nil {
		lon = r.Lng
	}
	if lat == nil || lon == nil {
		return 0, 0, fmt.Errorf("latitude and longitude are required")
	}
	if *lat < -90 || *lat > 90 || *lon < -180 || *lon > 180 {
		return 0, 0, fmt.Errorf("latitude/longitude out of range")
	}
	return *lat, *lon, nil
}

func (r *analysisRequest) businessType() string {
	if r.BusinessType != "" {
		return r.BusinessType
	}
	return r.Type
}

func (r *analysisRequest) hour() int {
	if r.Hour == nil {
		return scoring.UseCurrentHour
	}
	return ((*r.Hour % 24) + 24) % 24
}

// AnalysisHandler serves the feasibility and crowd analysis endpoints.
type AnalysisHandler struct {
	analysisService *services.AnalysisService
	classifier      *classifier.Classifier
}

func NewAnalysisHandler(analysisService *services.AnalysisService, cls *classifier.Classifier) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		classifier:      cls,
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*analysisRequest, bool) {
	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// AnalyzeLocation handles POST /v1/locations/analyze.
func (h *AnalysisHandler) AnalyzeLocation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	lat, lon, err := req.coordinates()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	businessType := req.businessType()
	if businessType == "" {
		businessType = "default"
	}

	analysis, err := h.analysisService.AnalyzeLocation(lat, lon, businessType, req.hour())
	if err != nil {
		log.Println("Error analyzing location:", err)
		writeError(w, http.StatusBadGateway, "Unable to analyze location")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"latitude":             analysis.Latitude,
		"longitude":            analysis.Longitude,
		"business_type":        analysis.BusinessType,
		"revenue_data":         analysis.RevenueData,
		"recommendations":      analysis.Recommendations,
		"crowd_score":          analysis.CrowdScore,
		"feasibility_score":    analysis.FeasibilityScore,
		"potential_score":      analysis.FeasibilityScore,
		"recommended_business": analysis.RecommendedBusiness,
	})
}

// AnalyzeCrowdIntensity handles POST /v1/crowd/intensity.
func (h *AnalysisHandler) AnalyzeCrowdIntensity(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	lat, lon, err := req.coordinates()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.analysisService.AnalyzeCrowdIntensity(lat, lon)
	if err != nil {
		log.Println("Error analyzing crowd intensity:", err)
		writeError(w, http.StatusBadGateway, "Unable to analyze crowd intensity")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":               true,
		"high_intensity":        analysis.High,
		"medium_intensity":      analysis.Medium,
		"low_intensity":         analysis.Low,
		"total_pois":            analysis.TotalPOIs,
		"business_prediction":   analysis.BusinessPrediction,
		"business_by_intensity": analysis.BusinessByIntensity,
		"crowd_score":           analysis.CrowdScore,
		"estimated_revenue":     analysis.EstimatedRevenue,
	})
}

// CheckFeasibility handles POST /v1/feasibility.
func (h *AnalysisHandler) CheckFeasibility(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	lat, lon, err := req.coordinates()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.analysisService.CheckFeasibility(lat, lon, req.businessType())
	if err != nil {
		log.Println("Error checking feasibility:", err)
		writeError(w, http.StatusBadGateway, "Unable to analyze location")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":              true,
		"feasible":             result.Feasible,
		"dominant_intensity":   result.DominantIntensity,
		"message":              result.Message,
		"latitude":             result.Latitude,
		"longitude":            result.Longitude,
		"recommended_business": result.RecommendedBusiness,
	})
}

// FindPopularPlaces handles POST /v1/places/popular.
func (h *AnalysisHandler) FindPopularPlaces(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	lat, lon, err := req.coordinates()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	places, err := h.analysisService.FindPopularPlaces(lat, lon, nil)
	if err != nil {
		log.Println("Error finding popular places:", err)
		writeError(w, http.StatusBadGateway, "Unable to fetch popular places. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":            true,
		"results":            places.Results,
		"total_area_revenue": places.TotalAreaRevenue,
	})
}

// GenerateBestLocations handles POST /v1/locations/best. Missing coordinates
// fall back to the default base point rather than erroring.
func (h *AnalysisHandler) GenerateBestLocations(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	lat, lon, err := req.coordinates()
	if err != nil {
		lat, lon = config.DEFAULT_BASE_LAT, config.DEFAULT_BASE_LON
	}

	topN := 3
	if req.TopN != nil {
		topN = *req.TopN
	}

	best, err := h.analysisService.GenerateBestLocations(lat, lon, topN)
	if err != nil {
		log.Println("Error generating best locations:", err)
		writeError(w, http.StatusBadGateway, "Unable to generate locations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"base_location": map[string]float64{"lat": best.BaseLocation.Lat, "lng": best.BaseLocation.Lon},
		"locations":     best.Locations,
	})
}

// FindMatchingLocations handles POST /v1/locations/matching.
func (h *AnalysisHandler) FindMatchingLocations(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	lat, lon, err := req.coordinates()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.analysisService.FindMatchingLocations(lat, lon, req.businessType(), req.CrowdIntensity)
	if err != nil {
		log.Println("Error finding matching locations:", err)
		writeError(w, http.StatusBadGateway, "Unable to analyze location")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matches": matches,
	})
}

// GetBusinessTypes handles GET /v1/business-types.
func (h *AnalysisHandler) GetBusinessTypes(w http.ResponseWriter, r *http.Request) {
	all := make(map[string]bool)
	for _, choices := range h.classifier.AllChoices() {
		for _, c := range choices {
			all[c] = true
		}
	}

	type businessType struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	types := make([]businessType, 0, len(all))
	for _, c := range sortedKeys(all) {
		types = append(types, businessType{Value: c, Label: scoring.TitleCase(c)})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"business_types": types,
	})
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

// CrowdHeatmap handles GET /v1/crowd/heatmap.
// expects ?lat={latitude(float)}&lon={longitude(float)}
func (h *AnalysisHandler) CrowdHeatmap(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument lat")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument lon")
		return
	}

	analysis, err := h.analysisService.AnalyzeCrowdIntensity(lat, lon)
	if err != nil {
		log.Println("Error building crowd heatmap:", err)
		writeError(w, http.StatusBadGateway, "Unable to build heatmap")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotSectorHeatmap(analysis.SectorAnalysis, w); err != nil {
		log.Println("Error rendering heatmap:", err)
	}
}

// Ping handles GET /ping
func (h *AnalysisHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
