package main

import (
	"context"
	"flag"
	"os"

	"github.com/timmy/quotebg/internal/config"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/repository"
	"github.com/timmy/quotebg/internal/service"
)

func main() {
	appLogger := logger.New(&logger.EnvConfig{
		Level:       "info",
		Format:      "text",
		ServiceName: "quotebg-populate",
		Environment: "local",
	})
	logger.SetDefaultLogger(appLogger)

	clear := flag.Bool("clear", false, "Delete existing images before seeding")
	clearCache := flag.Bool("clear-cache", false, "Also clear the match cache")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	imageRepo := repository.NewBackgroundImageRepository(db)
	cacheRepo := repository.NewMatchCacheRepository(db)
	inventory := service.NewInventoryService(imageRepo, cacheRepo, appLogger)

	ctx := context.Background()

	if *clearCache {
		removed, err := inventory.ClearCache(ctx)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to clear match cache")
		}
		logger.Info("Cleared %d cached match entries", removed)
	}

	result, err := inventory.Populate(ctx, *clear)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to populate inventory")
	}

	logger.Info("Seeding complete: seeded=%d failed=%d duration_ms=%d",
		result.Seeded, result.Failed, result.DurationMs)

	// Verify what landed
	stats, err := inventory.Stats(ctx)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to read inventory stats")
	}
	logger.Info("Inventory now holds %d images across %d categories",
		stats.TotalImages, len(stats.ByCategory))
	for category, count := range stats.ByCategory {
		logger.Info("  %s: %d images", category, count)
	}

	if result.Failed > 0 {
		os.Exit(1)
	}
}
