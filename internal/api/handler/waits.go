package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/parkpulse/parkpulse-data/internal/api/respond"
	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/parks"
	"github.com/parkpulse/parkpulse-data/internal/waits"
)

// GetAttractionWait returns the current wait for one attraction.
// @Summary Get attraction wait time
// @Description Returns the normalized wait-time record for an attraction, optionally enriched with crowd metadata, analytics, and a 12-hour forecast.
// @Tags waits
// @Produce json
// @Param attractionID path string true "Canonical attraction ID"
// @Param metadata query bool false "Include crowd metadata"
// @Param analytics query bool false "Include capacity analytics"
// @Param prediction query bool false "Include 12-hour wait forecast"
// @Success 200 {object} waits.AttractionResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} map[string]interface{}
// @Router /attractions/{attractionID}/wait [get]
func (h *Handler) GetAttractionWait(w http.ResponseWriter, r *http.Request) {
	attractionID := chi.URLParam(r, "attractionID")
	opts := waits.QueryOptions{
		Metadata:   boolFlag(r, "metadata"),
		Analytics:  boolFlag(r, "analytics"),
		Prediction: boolFlag(r, "prediction"),
	}

	resp, cached, err := h.svc.AttractionWait(r.Context(), attractionID, opts)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	ttl := tierForOpts(opts).TTL()
	writeCachedJSON(w, r, resp, ttl, cached)
}

// GetParkWaits returns the full snapshot for one park.
// @Summary Get park wait snapshot
// @Description Returns normalized records for every attraction in a park plus aggregate crowd metadata and analytics.
// @Tags waits
// @Produce json
// @Param parkID path string true "Canonical park ID"
// @Success 200 {object} waits.ParkSnapshot
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} map[string]interface{}
// @Router /parks/{parkID}/waits [get]
func (h *Handler) GetParkWaits(w http.ResponseWriter, r *http.Request) {
	parkID := chi.URLParam(r, "parkID")

	snap, cached, err := h.svc.ParkWaits(r.Context(), parkID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeCachedJSON(w, r, snap, cache.TierPark.TTL(), cached)
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// writeServiceError maps the orchestrator error taxonomy onto HTTP:
// unknown identifiers are the only true client errors (404 with the valid
// ID list); a fully degraded lookup is a 503 carrying the safe fallback
// record.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var unknown *parks.ErrUnknownID
	if errors.As(err, &unknown) {
		respond.WriteJSONObject(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{
				"code":     "UNKNOWN_ID",
				"message":  unknown.Error(),
				"validIds": unknown.ValidIDs,
			},
		})
		return
	}

	var degraded *waits.DegradedError
	if errors.As(err, &degraded) {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"error": map[string]any{
				"code":    "SERVICE_DEGRADED",
				"message": degraded.Error(),
			},
			"fallback": degraded.Fallback,
		})
		return
	}

	respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Unexpected error")
}

// writeCachedJSON marshals v once, handles If-None-Match, and writes with
// ETag and TTL-derived cache headers.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any, ttl time.Duration, cacheHit bool) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING", "Failed to encode response")
		return
	}
	etag := respond.ComputeETag(data)
	if respond.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, cacheHit)
}

func boolFlag(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	return v == "1" || v == "true"
}

// tierForOpts mirrors the orchestrator's tier selection for header TTLs.
func tierForOpts(opts waits.QueryOptions) cache.Tier {
	switch {
	case opts.Prediction:
		return cache.TierPredictions
	case opts.Analytics:
		return cache.TierAnalytics
	default:
		return cache.TierIndividual
	}
}
