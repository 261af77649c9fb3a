// Command api is the ParkPulse Data API server.
//
// Usage:
//
//	parkpulse-api
//	API_PORT=8080 parkpulse-api

// @title ParkPulse Data API
// @version 1.0.0
// @description Theme-park wait-time intelligence API: normalized wait times, crowd levels, Lightning Lane and virtual queue availability, short-horizon forecasts, and park-wide analytics.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name ParkPulse
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/parkpulse/parkpulse-data/internal/api"
	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/config"
	"github.com/parkpulse/parkpulse-data/internal/db"
	"github.com/parkpulse/parkpulse-data/internal/engine"
	"github.com/parkpulse/parkpulse-data/internal/history"
	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
	"github.com/parkpulse/parkpulse-data/internal/waits"

	_ "github.com/parkpulse/parkpulse-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Historical store is optional: no database means history writes are
	// dropped, never that the API refuses to start.
	var pool *db.Pool
	var store history.Store
	if cfg.HistoryEnabled {
		logger.Info("Connecting to historical store...")
		pool, err = db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to historical store", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store = history.NewPostgresStore(pool.Pool)
		logger.Info("Historical store connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	} else {
		logger.Info("Historical store disabled")
	}
	recorder := history.NewRecorder(store, cfg.HistoryWriteTimeout, logger)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Live data provider client
	provider := themeparks.NewClient(
		cfg.ProviderBaseURL, cfg.ProviderAPIKey,
		cfg.ProviderRequestsPerMin, cfg.ProviderTimeout, logger)

	// Engine: pre-aggregated batch source refreshed in the background
	var batchSource waits.BatchSource
	if cfg.EngineEnabled {
		eng := engine.New(provider, cfg.EngineRefreshInterval, cfg.EngineMaxBatchAge, logger)
		go eng.Run(ctx)
		batchSource = eng
		logger.Info("Engine refresher started", "interval", cfg.EngineRefreshInterval)
	} else {
		logger.Info("Engine disabled; all misses go direct to provider")
	}

	// Request orchestrator
	svc := waits.NewService(waits.ServiceDeps{
		Provider: provider,
		Engine:   batchSource,
		Cache:    appCache,
		Recorder: recorder,
		Logger:   logger,
	})

	// Create router
	router := api.NewRouter(svc, appCache, pool, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting ParkPulse Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
