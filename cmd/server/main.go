package main // Entry point package

import (
	"context" // context for bootstrap deadlines
	"log"     // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/theater-seat-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/theater-seat-booking/internal/database"   // DB connection, schema and seed
	"github.com/iliyamo/theater-seat-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/theater-seat-booking/internal/middleware" // cache and rate limit middleware
	"github.com/iliyamo/theater-seat-booking/internal/queue"      // seat event consumer
	"github.com/iliyamo/theater-seat-booking/internal/repository" // data access layer
	"github.com/iliyamo/theater-seat-booking/internal/router"     // route registration
	"github.com/iliyamo/theater-seat-booking/internal/service"    // domain services
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := database.SeedDemoCatalog(ctx, db); err != nil {
			log.Fatalf("demo seed failed: %v", err)
		}
	}

	// Repositories and domain services.
	screenRepo := repository.NewScreenRepo(db)
	showRepo := repository.NewShowRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	availability := service.NewAvailabilityEngine(seatRepo, showRepo)
	reservations := service.NewReservationService(seatRepo, availability)

	// Redis-backed middleware; both no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: response cache and rate limiting disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	browse := handler.NewBrowseHandler(screenRepo, showRepo, reservations)
	booking := handler.NewBookingHandler(reservations)
	router.RegisterRoutes(e, browse, booking, rateLimit, cache)

	// Background consumer appends seat events to logs/booking.log and
	// reconnects on its own; it never takes the server down.
	go queue.StartSeatEventConsumer()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
