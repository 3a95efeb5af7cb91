package services

import (
	"fmt"
	"log"
	"time"

	"bizsense-server/config"
	redisdao "bizsense-server/dao/redis"
)

// Location holds latitude and longitude for refresh jobs.
type Location struct {
	Lat float64
	Lng float64
}

// seedLocations is the constant list of city centers whose candidate sites
// are pre-scored into the hotspot geo index.
var seedLocations = []Location{
	{
		// Mumbai
		Lat: 19.0760,
		Lng: 72.8777,
	},
	{
		// Delhi
		Lat: 28.6139,
		Lng: 77.2090,
	},
	{
		// Bengaluru
		Lat: 12.9716,
		Lng: 77.5946,
	},
	{
		// Hyderabad
		Lat: 17.3850,
		Lng: 78.4867,
	},
	{
		// Chennai
		Lat: 13.0827,
		Lng: 80.2707,
	},
	{
		// Pune
		Lat: 18.5204,
		Lng: 73.8567,
	},
}

// HotspotRefresherService periodically re-scores candidate sites around the
// seed locations and upserts them into the hotspot geo index.
type HotspotRefresherService struct {
	analysisService *AnalysisService
	hotspotDao      *redisdao.RedisHotspotDAO
}

// NewHotspotRefresherService constructs a new refresher with dependencies.
func NewHotspotRefresherService(
	analysisService *AnalysisService,
	hotspotDao *redisdao.RedisHotspotDAO,
) *HotspotRefresherService {
	return &HotspotRefresherService{
		analysisService: analysisService,
		hotspotDao:      hotspotDao,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (hr *HotspotRefresherService) StartPeriodicJob(interval time.Duration) {
	go hr.startPeriodicJob(interval)
}

func (hr *HotspotRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[HotspotRefresherService] Running periodic hotspot refresh job.")
		if err := hr.RefreshHotspots(); err != nil {
			log.Printf("[HotspotRefresherService] RefreshHotspots returned error: %v", err)
		} else {
			log.Println("[HotspotRefresherService] RefreshHotspots completed successfully.")
		}
	}
}

// RefreshHotspots scores the candidate ring for every seed location and
// stores the winners.
func (hr *HotspotRefresherService) RefreshHotspots() error {
	log.Printf("[HotspotRefresherService] Refreshing hotspots for %d seed locations", len(seedLocations))

	var failures int
	for _, loc := range seedLocations {
		best, err := hr.analysisService.GenerateBestLocations(loc.Lat, loc.Lng, 3)
		if err != nil {
			log.Printf("[HotspotRefresherService] Failed to generate candidates for %v,%v: %v", loc.Lat, loc.Lng, err)
			failures++
			continue
		}

		for _, candidate := range best.Locations {
			hotspot := redisdao.Hotspot{
				ID:               fmt.Sprintf("%.4f_%.4f_%s", candidate.Lat, candidate.Lng, candidate.Name),
				Lat:              candidate.Lat,
				Lng:              candidate.Lng,
				BusinessType:     candidate.BusinessType,
				Score:            candidate.Score,
				EstimatedRevenue: candidate.EstimatedRevenue,
				Factors:          candidate.Factors,
			}
			if err := hr.hotspotDao.UpsertHotspot(hotspot); err != nil {
				log.Printf("[HotspotRefresherService] Failed to upsert hotspot %s: %v", hotspot.ID, err)
			}
		}
	}

	if failures == len(seedLocations) && failures > 0 {
		return fmt.Errorf("all %d seed locations failed to refresh", failures)
	}
	return nil
}

// ScheduleInterval returns the configured refresh interval.
func ScheduleInterval() time.Duration {
	return config.HOTSPOT_REFRESHER_SCHEDULE_MINUTES * time.Minute
}
