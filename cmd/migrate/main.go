package main

import (
	"os"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/database"
	"github.com/JonasLeetTheWay/fyyur/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("migrate", cfg.LogLevel)

	// Connect to database
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Seed sample data
	if err := database.SeedData(db, log); err != nil {
		log.Error("failed to seed data", "error", err)
		os.Exit(1)
	}

	log.Info("database migration and seeding completed successfully")
}
