package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/database"
	"github.com/JonasLeetTheWay/fyyur/internal/events"
	"github.com/JonasLeetTheWay/fyyur/internal/logger"
	"github.com/JonasLeetTheWay/fyyur/internal/redis"
	"github.com/JonasLeetTheWay/fyyur/internal/services"
	"github.com/JonasLeetTheWay/fyyur/internal/services/artist"
	"github.com/JonasLeetTheWay/fyyur/internal/services/home"
	"github.com/JonasLeetTheWay/fyyur/internal/services/show"
	"github.com/JonasLeetTheWay/fyyur/internal/services/venue"
	"github.com/JonasLeetTheWay/fyyur/internal/web"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("fyyur", cfg.LogLevel)

	// Connect to database
	db, err := database.Connect(cfg, log.Named("database"))
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if cfg.SeedData {
		if err := database.SeedData(db, log.Named("database")); err != nil {
			log.Error("failed to seed data", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis; the venue cache is optional
	cache := redis.NewClient(cfg)
	if cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, venue cache disabled", "error", err)
			cache.Close()
			cache = nil
		}
		cancel()
	}
	defer cache.Close()

	deps := services.NewDeps(database.NewStore(db), cache, events.NewPublisher(cfg, log.Named("events")), log)

	// Setup Gin router
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(logger.Middleware(log.Named("http")))
	if err := web.Setup(r, log.Named("http")); err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Setup routes
	home.NewService(deps).SetupRoutes(r)
	venue.NewService(deps).SetupRoutes(r)
	artist.NewService(deps).SetupRoutes(r)
	show.NewService(deps).SetupRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	// Start server
	log.Info("fyyur starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
