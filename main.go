package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/ajcraig99/tornticker/internal/collector"
	"github.com/ajcraig99/tornticker/internal/config"
	"github.com/ajcraig99/tornticker/internal/database"
	"github.com/ajcraig99/tornticker/internal/logging"
	"github.com/ajcraig99/tornticker/internal/store"
	"github.com/ajcraig99/tornticker/internal/tornapi"

	"github.com/joho/godotenv"
)

// tornticker runs one collection pass over the Torn API feeds and exits.
// Scheduling is external: cron invokes it daily and alerts on a non-zero
// exit status.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	logg, err := logging.New(cfg.LogFile)
	if err != nil {
		log.Fatal("Failed to open log file:", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		logg.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		logg.Fatalf("Failed to open database: %v", err)
	}

	client := tornapi.NewClient(cfg, logg)
	runner := collector.NewRunner(store.New(db), client, logg, cfg)

	if err := runner.Run(); err != nil {
		logg.Fatalf("Collection run aborted: %v", err)
	}
}
