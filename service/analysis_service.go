package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"bizsense-server/api/overpass"
	"bizsense-server/classifier"
	"bizsense-server/config"
	redisdao "bizsense-server/dao/redis"
	"bizsense-server/models"
	"bizsense-server/scoring"
)

var defaultTagKeys = []string{"amenity", "shop", "tourism"}
var popularPlacesTagKeys = []string{"amenity"}
var candidateTagKeys = []string{"amenity", "shop", "tourism", "public_transport"}

// AnalysisService composes the POI provider, the query cache and the scoring
// core into the operations exposed over HTTP.
type AnalysisService struct {
	overpassAPI overpass.OverpassAPI
	poiCache    *redisdao.POICacheDAO
	classifier  *classifier.Classifier
}

// NewAnalysisService constructs an AnalysisService. poiCache may be nil, in
// which case every request hits the provider.
func NewAnalysisService(
	overpassAPI overpass.OverpassAPI,
	poiCache *redisdao.POICacheDAO,
	cls *classifier.Classifier) *AnalysisService {

	return &AnalysisService{
		overpassAPI: overpassAPI,
		poiCache:    poiCache,
		classifier:  cls,
	}
}

// FetchPOIs loads the POI snapshot for a point, consulting the query cache
// first.
func (s *AnalysisService) FetchPOIs(lat, lon float64, radiusMeters int, tagKeys []string) ([]models.OverpassElement, error) {
	query := overpass.BuildQuery(lat, lon, radiusMeters, tagKeys)

	if s.poiCache != nil {
		if cached, err := s.poiCache.GetCachedResponse(query); err == nil && cached != nil {
			return cached.Elements, nil
		}
	}

	response, err := s.overpassAPI.GetPOIsNearby(lat, lon, radiusMeters, tagKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch POIs: %w", err)
	}

	if s.poiCache != nil {
		if err := s.poiCache.SetCachedResponse(query, response); err != nil {
			log.Printf("[AnalysisService] failed to cache overpass response: %v", err)
		}
	}
	return response.Elements, nil
}

// LocationAnalysis is the full revenue forecast for a selected point.
type LocationAnalysis struct {
	Latitude            float64              `json:"latitude"`
	Longitude           float64              `json:"longitude"`
	BusinessType        string               `json:"business_type"`
	RevenueData         scoring.ScoredResult `json:"revenue_data"`
	Recommendations     []string             `json:"recommendations"`
	CrowdScore          int                  `json:"crowd_score"`
	FeasibilityScore    int                  `json:"feasibility_score"`
	RecommendedBusiness string               `json:"recommended_business"`
}

// AnalyzeLocation scores a business type at a point and attaches the
// classifier's own suggestion for comparison.
func (s *AnalysisService) AnalyzeLocation(lat, lon float64, businessType string, hour int) (*LocationAnalysis, error) {
	pois, err := s.FetchPOIs(lat, lon, config.ANALYSIS_RADIUS_METERS, defaultTagKeys)
	if err != nil {
		return nil, err
	}

	revenue := scoring.Score(pois, businessType, hour)
	crowdScore := scoring.CrowdScore(pois)

	dominant := scoring.IntensityLow
	if crowdScore >= 70 {
		dominant = scoring.IntensityHigh
	} else if crowdScore >= 35 {
		dominant = scoring.IntensityMedium
	}
	recommended := s.classifier.Predict(string(dominant), classifier.InferAreaHint(pois))

	return &LocationAnalysis{
		Latitude:            lat,
		Longitude:           lon,
		BusinessType:        businessType,
		RevenueData:         revenue,
		Recommendations:     revenue.Recommendations,
		CrowdScore:          crowdScore,
		FeasibilityScore:    revenue.PotentialScore,
		RecommendedBusiness: recommended,
	}, nil
}

// BusinessAlternative is a classifier suggestion for a non-dominant tier.
type BusinessAlternative struct {
	Business  string `json:"business"`
	Intensity string `json:"intensity"`
}

// BusinessPrediction is the classifier block of the intensity analysis.
type BusinessPrediction struct {
	Primary      string                `json:"primary"`
	Reasoning    string                `json:"reasoning"`
	Alternatives []BusinessAlternative `json:"alternatives"`
	BestTimes    string                `json:"best_times"`
	Choices      []string              `json:"choices"`
	Intensity    string                `json:"intensity"`
}

var intensityReasoning = map[scoring.Intensity]string{
	scoring.IntensityHigh:   "High foot traffic in commercial area - ideal for food, retail, and services.",
	scoring.IntensityMedium: "Moderate crowd in residential area - good for essentials like grocery, pharmacy.",
	scoring.IntensityLow:    "Low traffic in outskirts - suited for storage, warehouse, or niche ventures.",
}

var intensityBestTimes = map[scoring.Intensity]string{
	scoring.IntensityHigh:   "Peak hours 10am-8pm. Morning (6-10am) has lower competition.",
	scoring.IntensityMedium: "Steady flow 9am-7pm. Evening slightly busier.",
	scoring.IntensityLow:    "Flexible timing. Consider proximity to transport for visibility.",
}

// IntensityAnalysis is the sector heat map plus the classifier's view of it.
type IntensityAnalysis struct {
	scoring.SectorAnalysis
	TotalPOIs           int                 `json:"total_pois"`
	BusinessPrediction  *BusinessPrediction `json:"business_prediction"`
	BusinessByIntensity map[string][]string `json:"business_by_intensity"`
	CrowdScore          int                 `json:"crowd_score"`
	EstimatedRevenue    int                 `json:"estimated_revenue"`
}

// AnalyzeCrowdIntensity sectorizes the POIs around a point into intensity
// tiers and predicts the best business for the dominant tier.
func (s *AnalysisService) AnalyzeCrowdIntensity(lat, lon float64) (*IntensityAnalysis, error) {
	pois, err := s.FetchPOIs(lat, lon, config.ANALYSIS_RADIUS_METERS, defaultTagKeys)
	if err != nil {
		return nil, err
	}

	analysis := scoring.Sectorize(lat, lon, pois, config.ANALYSIS_RADIUS_METERS)
	dominant := analysis.Dominant()

	areaHint := classifier.InferAreaHint(pois)
	primary := s.classifier.Predict(string(dominant), areaHint)

	var alternatives []BusinessAlternative
	for _, tier := range []scoring.Intensity{scoring.IntensityHigh, scoring.IntensityMedium, scoring.IntensityLow} {
		if tier == dominant {
			continue
		}
		alt := s.classifier.Predict(string(tier), "")
		if alt == "" || alt == primary || containsAlternative(alternatives, alt) {
			continue
		}
		alternatives = append(alternatives, BusinessAlternative{Business: alt, Intensity: string(tier)})
	}
	if len(alternatives) > 2 {
		alternatives = alternatives[:2]
	}

	crowdScore := scoring.CrowdScore(pois)
	return &IntensityAnalysis{
		SectorAnalysis: analysis,
		TotalPOIs:      len(pois),
		BusinessPrediction: &BusinessPrediction{
			Primary:      primary,
			Reasoning:    intensityReasoning[dominant],
			Alternatives: alternatives,
			BestTimes:    intensityBestTimes[dominant],
			Choices:      s.classifier.ChoicesFor(string(dominant)),
			Intensity:    string(dominant),
		},
		BusinessByIntensity: s.classifier.AllChoices(),
		CrowdScore:          crowdScore,
		EstimatedRevenue:    scoring.PredictRevenue(crowdScore),
	}, nil
}

func containsAlternative(alts []BusinessAlternative, business string) bool {
	for _, a := range alts {
		if a.Business == business {
			return true
		}
	}
	return false
}

// FeasibilityResult is the verdict on a business type at a point.
type FeasibilityResult struct {
	Feasible            bool    `json:"feasible"`
	DominantIntensity   string  `json:"dominant_intensity"`
	Message             string  `json:"message"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	RecommendedBusiness string  `json:"recommended_business"`
}

// CheckFeasibility decides whether a business type fits a location. The rule
// is permissive: the type passes if it appears in the dataset vocabulary for
// the dominant tier, matches the classifier's suggestion, or already exists
// nearby at least twice (local proof). High-intensity areas additionally
// accept anything that sounds like retail or food.
func (s *AnalysisService) CheckFeasibility(lat, lon float64, businessType string) (*FeasibilityResult, error) {
	pois, err := s.FetchPOIs(lat, lon, config.ANALYSIS_RADIUS_METERS, defaultTagKeys)
	if err != nil {
		return nil, err
	}

	analysis := scoring.Sectorize(lat, lon, pois, config.ANALYSIS_RADIUS_METERS)
	dominant := analysis.Dominant()

	rawKey := scoring.NormalizeKey(businessType)
	target := string(scoring.NormalizeBusinessType(businessType))

	// Count how often the requested type already shows up nearby.
	foundCount := 0
	for i := range pois {
		poiType := strings.ToLower(pois[i].Category())
		poiName := strings.ToLower(pois[i].Tag("name"))
		if rawKey == "" {
			continue
		}
		if strings.Contains(poiType, rawKey) || strings.Contains(poiType, target) ||
			(poiName != "" && strings.Contains(poiName, rawKey)) {
			foundCount++
		}
	}

	recommended := scoring.NormalizeKey(s.classifier.Predict(string(dominant), classifier.InferAreaHint(pois)))

	result := &FeasibilityResult{
		DominantIntensity:   string(dominant),
		Latitude:            lat,
		Longitude:           lon,
		RecommendedBusiness: recommended,
	}

	if strings.TrimSpace(businessType) == "" {
		result.Feasible = true
		result.Message = fmt.Sprintf(
			"Location analyzed. Dominant crowd intensity is %s. We recommend starting a %s here.",
			dominant, strings.ReplaceAll(recommended, "_", " "))
		return result, nil
	}

	allowed := make(map[string]bool)
	for _, choice := range s.classifier.ChoicesFor(string(dominant)) {
		allowed[scoring.NormalizeKey(choice)] = true
	}

	isInDataset := allowed[rawKey] || allowed[target]
	isRecommended := rawKey == recommended || target == recommended
	hasLocalProof := foundCount >= 2

	feasible := isInDataset || isRecommended || hasLocalProof
	if !feasible && dominant == scoring.IntensityHigh &&
		(strings.Contains(rawKey, "shop") || strings.Contains(rawKey, "store") || strings.Contains(rawKey, "food")) {
		feasible = true
	}

	result.Feasible = feasible
	switch {
	case feasible && hasLocalProof:
		result.Message = fmt.Sprintf(
			"Feasible: we found %d similar businesses in the area, confirming this is a strong location for a %q.",
			foundCount, businessType)
	case feasible:
		result.Message = fmt.Sprintf(
			"Feasible: a %q matches the %s crowd profile and development level of this area.",
			businessType, dominant)
	default:
		result.Message = fmt.Sprintf(
			"Not feasible: the area currently has %s intensity and low indicators for %q. Consider a %s instead.",
			dominant, businessType, strings.ReplaceAll(recommended, "_", " "))
	}
	return result, nil
}

// PopularPlaces is the bulk enrichment result.
type PopularPlaces struct {
	Results          []scoring.EnrichedPlace `json:"results"`
	TotalAreaRevenue float64                 `json:"total_area_revenue"`
}

// FindPopularPlaces annotates every amenity around a point with a simulated
// revenue block. rng may be nil for live behavior; tests pass a seeded one.
func (s *AnalysisService) FindPopularPlaces(lat, lon float64, rng *rand.Rand) (*PopularPlaces, error) {
	pois, err := s.FetchPOIs(lat, lon, config.ANALYSIS_RADIUS_METERS, popularPlacesTagKeys)
	if err != nil {
		return nil, err
	}

	enriched, total := scoring.EnrichPlaces(pois, scoring.UseCurrentHour, rng)
	return &PopularPlaces{Results: enriched, TotalAreaRevenue: total}, nil
}

// BestLocations is the candidate ring result.
type BestLocations struct {
	BaseLocation models.LatLng       `json:"base_location"`
	Locations    []scoring.Candidate `json:"locations"`
}

// GenerateBestLocations ranks synthetic candidate sites around a base point.
func (s *AnalysisService) GenerateBestLocations(lat, lon float64, topN int) (*BestLocations, error) {
	pois, err := s.FetchPOIs(lat, lon, config.CANDIDATE_SEARCH_RADIUS_METERS, candidateTagKeys)
	if err != nil {
		return nil, err
	}

	return &BestLocations{
		BaseLocation: models.LatLng{Lat: lat, Lon: lon},
		Locations:    scoring.GenerateCandidates(lat, lon, pois, topN),
	}, nil
}

// MatchingLocation is a sector centroid matching a requested intensity.
type MatchingLocation struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Intensity string  `json:"intensity"`
	Business  string  `json:"business"`
}

// FindMatchingLocations returns up to three sector centroids whose intensity
// matches the request. When nothing matches, the base point itself is
// returned so the caller always has something to show.
func (s *AnalysisService) FindMatchingLocations(lat, lon float64, businessType, crowdIntensity string) ([]MatchingLocation, error) {
	pois, err := s.FetchPOIs(lat, lon, config.ANALYSIS_RADIUS_METERS, defaultTagKeys)
	if err != nil {
		return nil, err
	}

	analysis := scoring.Sectorize(lat, lon, pois, config.ANALYSIS_RADIUS_METERS)
	requested := strings.TrimSpace(strings.ToLower(crowdIntensity))

	var areas []scoring.IntensityArea
	switch scoring.Intensity(requested) {
	case scoring.IntensityHigh:
		areas = analysis.High
	case scoring.IntensityMedium:
		areas = analysis.Medium
	default:
		areas = analysis.Low
	}

	var matches []MatchingLocation
	for _, area := range areas {
		matches = append(matches, MatchingLocation{
			Lat:       area.Latitude,
			Lon:       area.Longitude,
			Intensity: requested,
			Business:  businessType,
		})
		if len(matches) >= 3 {
			break
		}
	}

	if len(matches) == 0 {
		matches = append(matches, MatchingLocation{
			Lat:       lat,
			Lon:       lon,
			Intensity: requested,
			Business:  businessType,
		})
	}
	return matches, nil
}
