package main

import (
	"fmt"
	"log"
	"os"

	"bizsense-server/di"
	services "bizsense-server/service"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("refreshing hotspots!")
	if err := container.HotspotRefresherService.RefreshHotspots(); err != nil {
		log.Printf("[MAIN] initial hotspot refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.HotspotRefresherService.StartPeriodicJob(services.ScheduleInterval())

	fmt.Println("starting server!")
	container.BizSenseHttpServer.Start()
}
