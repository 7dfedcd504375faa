// ABOUTME: Main entry point for the Website Differ API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atomicul/website-differ/api"
	"github.com/atomicul/website-differ/api/handlers"
	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/interfaces"
	"github.com/atomicul/website-differ/core/snapshot"
	"github.com/atomicul/website-differ/infrastructure/cache/memory"
	"github.com/atomicul/website-differ/infrastructure/cache/redis"
	stdhttp "github.com/atomicul/website-differ/infrastructure/http/standard"
	logruslogger "github.com/atomicul/website-differ/infrastructure/logger/logrus"
	"github.com/atomicul/website-differ/infrastructure/storage/sqlite"
	"github.com/atomicul/website-differ/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(logruslogger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
	})
	logger.Info("Starting Website Differ API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create diff history storage, if configured
	var store interfaces.DiffHistoryStorage
	if cfg.Storage.SQLitePath != "" {
		sqliteStore, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open history database: %v", err)
		}
		defer sqliteStore.Close()
		store = sqliteStore
		logger.Info("Diff history persistence enabled", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
	}

	// Create services
	differ, err := diff.New()
	if err != nil {
		log.Fatalf("Failed to create differ: %v", err)
	}
	snapshotService := snapshot.NewService(deps, differ, store)

	// Create API with middleware
	humaAPI, router := api.NewAPI(api.Config{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	})

	// Create and register handlers
	diffHandler := handlers.NewDiffHandler(differ, deps)
	diffHandler.RegisterRoutes(humaAPI)

	snapshotsHandler := handlers.NewSnapshotsHandler(snapshotService)
	snapshotsHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
