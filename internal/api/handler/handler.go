// Package handler provides HTTP handlers for all API endpoints. Handlers
// are a thin layer over the waits orchestrator: they parse identifiers and
// query flags, map the error taxonomy to status codes, and own the
// ETag/cache-header surface.
package handler

import (
	"net/http"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/api/respond"
	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/config"
	"github.com/parkpulse/parkpulse-data/internal/db"
	"github.com/parkpulse/parkpulse-data/internal/waits"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc   *waits.Service
	cache *cache.Cache
	pool  *db.Pool // nil when the historical store is disabled
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(svc *waits.Service, c *cache.Cache, pool *db.Pool, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cache: c, pool: pool, cfg: cfg}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and available optimizations.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "ParkPulse Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"optimizations": []string{
			"tiered_in_memory_cache",
			"pre_aggregated_engine_batches",
			"gzip_compression",
			"etag_support",
			"fire_and_forget_history_writes",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies historical store connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity for the historical store.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"database":  "disabled",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns tiered cache statistics (fresh keys, stale keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
