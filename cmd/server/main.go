package main // Entry point package

import (
	"context"
	"log" // Logging library
	"time"

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/cineretro/cine-calendrier/internal/cache"
	"github.com/cineretro/cine-calendrier/internal/calendar"
	"github.com/cineretro/cine-calendrier/internal/config"
	"github.com/cineretro/cine-calendrier/internal/database"
	"github.com/cineretro/cine-calendrier/internal/handler"
	"github.com/cineretro/cine-calendrier/internal/middleware"
	"github.com/cineretro/cine-calendrier/internal/queue"
	"github.com/cineretro/cine-calendrier/internal/repository"
	"github.com/cineretro/cine-calendrier/internal/router"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("document store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	store := cache.New(rdb, cacheCfg)

	repo := repository.NewScreeningsRepo(db, store, cfg, cacheCfg)
	agg := calendar.NewAggregator(repo)

	// The consumer reconnects on its own; it never stops the server.
	go func() {
		if err := queue.StartScreeningsConsumer(store); err != nil {
			log.Printf("screenings consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterPublic(e,
		&handler.CalendarHandler{Agg: agg},
		&handler.MovieHandler{Repo: repo},
		&handler.SearchHandler{Repo: repo},
	)
	router.RegisterAdmin(e, &handler.CalendarHandler{Agg: agg}, &handler.AdminHandler{})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
