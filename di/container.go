package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"bizsense-server/api"
	"bizsense-server/api/nominatim"
	"bizsense-server/api/overpass"
	"bizsense-server/classifier"
	"bizsense-server/config"
	"bizsense-server/dao/redis"
	"bizsense-server/db"
	"bizsense-server/server"
	"bizsense-server/server/handlers"
	services "bizsense-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	POICacheDao             *redis.POICacheDAO
	HotspotDao              *redis.RedisHotspotDAO
	OverpassAPI             overpass.OverpassAPI
	GeocodingAPI            nominatim.GeocodingAPI
	Classifier              *classifier.Classifier
	AnalysisService         *services.AnalysisService
	HotspotRefresherService *services.HotspotRefresherService
	AnalysisHandler         *handlers.AnalysisHandler
	SearchHandler           *handlers.SearchHandler
	HotspotHandler          *handlers.HotspotHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	BizSenseHttpServer      *server.BizSenseHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	poiCacheDao := redis.NewPOICacheDAO(redisClient, config.OVERPASS_CACHE_TTL)
	hotspotDao := redis.NewRedisHotspotDAO(redisClient)

	var overpassAPI overpass.OverpassAPI
	var geocodingAPI nominatim.GeocodingAPI
	if env != "prod" {
		log.Printf("Using mock overpass and nominatim clients")
		overpassAPI = overpass.NewOverpassApiClientMock()
		geocodingAPI = nominatim.NewNominatimApiClientMock()
	} else {
		log.Printf("Using prod overpass and nominatim clients")
		overpassHttpClient := api.NewHTTPClient(
			"", config.OVERPASS_USER_AGENT, config.OVERPASS_TIMEOUT_SECONDS*time.Second)
		overpassAPI = overpass.NewOverpassApiClient(config.OVERPASS_URLS, overpassHttpClient)

		nominatimHttpClient := api.NewHTTPClient(
			config.NOMINATIM_ENDPOINT_BASE, config.OVERPASS_USER_AGENT, 10*time.Second)
		geocodingAPI = nominatim.NewNominatimApiClient(nominatimHttpClient)
	}

	cls := classifier.New()

	analysisService := services.NewAnalysisService(overpassAPI, poiCacheDao, cls)
	hotspotRefresherService := services.NewHotspotRefresherService(analysisService, hotspotDao)

	analysisHandler := handlers.NewAnalysisHandler(analysisService, cls)
	searchHandler := handlers.NewSearchHandler(geocodingAPI)
	hotspotHandler := handlers.NewHotspotHandler(hotspotDao)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(analysisHandler, searchHandler, hotspotHandler, muxRouter)

	bizSenseHttpServer := server.NewBizSenseHttpServer(router, muxRouter)

	return &Container{
		RedisClient:             redisClient,
		POICacheDao:             poiCacheDao,
		HotspotDao:              hotspotDao,
		OverpassAPI:             overpassAPI,
		GeocodingAPI:            geocodingAPI,
		Classifier:              cls,
		AnalysisService:         analysisService,
		HotspotRefresherService: hotspotRefresherService,
		AnalysisHandler:         analysisHandler,
		SearchHandler:           searchHandler,
		HotspotHandler:          hotspotHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		BizSenseHttpServer:      bizSenseHttpServer,
	}
}
