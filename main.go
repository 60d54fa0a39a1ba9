package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/configs"
	"github.com/niksankarkee/restosaas-sub000/jobs"
	"github.com/niksankarkee/restosaas-sub000/middlewares"
	"github.com/niksankarkee/restosaas-sub000/pkg/mailer"
	"github.com/niksankarkee/restosaas-sub000/repository"
	"github.com/niksankarkee/restosaas-sub000/routes"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	m := mailer.New(cfg.SendgridAPIKey, cfg.MailFromName, cfg.MailFromAddr)

	// live reservation feed for owner dashboards
	hub := ws.NewReservationHub(services.NewRestaurantService(repository.NewRestaurantRepository(db)))
	go hub.Run()

	// nightly reservation sweep + reminder mail
	scheduler := jobs.NewReservationScheduler(repository.NewReservationRepository(db), m)
	scheduler.Start()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded restaurant images
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, hub, m)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
