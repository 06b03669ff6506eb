package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/quotebg/internal/api"
	"github.com/timmy/quotebg/internal/config"
	"github.com/timmy/quotebg/internal/logger"
	"github.com/timmy/quotebg/internal/repository"
	"github.com/timmy/quotebg/internal/service"
	"github.com/timmy/quotebg/internal/storage"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(logger.LoadFromEnv())
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	imageRepo := repository.NewBackgroundImageRepository(db)
	cacheRepo := repository.NewMatchCacheRepository(db)

	// Object storage is optional: without it the share endpoint reports an
	// error but matching still works.
	ctx := context.Background()
	var cardStore storage.ObjectStorage
	if cfg.Storage.AccessKey != "" {
		store, err := storage.NewStorage(&storage.S3Config{
			Type:      storage.StorageType(cfg.Storage.Type),
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage: %v", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Warn("Failed to ensure storage bucket, share cards may fail: %v", err)
		}
		cardStore = store
	} else {
		logger.Warn("No storage credentials configured, share card generation disabled")
	}

	matchService := service.NewMatchService(imageRepo, cacheRepo, appLogger, &service.MatchConfig{
		Limit: cfg.Match.Limit,
	})
	shareService := service.NewShareCardService(matchService, cardStore, appLogger, &service.ShareCardConfig{
		SiteName: cfg.Share.SiteName,
	})
	inventoryService := service.NewInventoryService(imageRepo, cacheRepo, appLogger)

	router := api.SetupRouter(&cfg.Server, &api.Services{
		Match:     matchService,
		Share:     shareService,
		Inventory: inventoryService,
	}, appLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting API server on port %d (mode=%s)", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
