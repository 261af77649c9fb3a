// Package engine maintains the pre-aggregated batch source: the latest raw
// live batch per registered park, refreshed on a ticker. The request path
// reads these batches instead of hitting the provider; a batch past its
// freshness bound counts as an engine miss and the orchestrator falls
// through to a direct call.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/parks"
	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
)

// Provider is the subset of the live client the engine needs.
type Provider interface {
	GetParkLive(ctx context.Context, parkExternalID string) ([]themeparks.RawAttraction, error)
}

type batch struct {
	raws      []themeparks.RawAttraction
	fetchedAt time.Time
}

// Engine holds the latest batch per park.
type Engine struct {
	provider Provider
	maxAge   time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	batches map[string]batch
}

// New creates an engine. maxAge bounds how old a batch may be and still be
// served; interval is the background refresh cadence.
func New(provider Provider, interval, maxAge time.Duration, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		provider: provider,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		batches:  make(map[string]batch),
	}
}

// ParkBatch returns the latest batch for a park if it is within the
// freshness bound.
func (e *Engine) ParkBatch(parkID string) ([]themeparks.RawAttraction, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.batches[parkID]
	if !ok || e.now().Sub(b.fetchedAt) > e.maxAge {
		return nil, false
	}
	return b.raws, true
}

// Run refreshes all registered parks on the configured interval. Blocks
// until ctx is cancelled. Intended to be called with `go`.
func (e *Engine) Run(ctx context.Context) {
	e.logger.Info("Engine refresher started", "interval", e.interval, "max_age", e.maxAge)

	// Prime immediately so the first requests have a batch to hit.
	e.RefreshAll(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.RefreshAll(ctx)
		case <-ctx.Done():
			e.logger.Info("Engine refresher stopped")
			return
		}
	}
}

// RefreshAll fetches a fresh batch for every registered park. Per-park
// failures are logged and skipped; the previous batch stays in place until
// it ages out.
func (e *Engine) RefreshAll(ctx context.Context) {
	for _, park := range parks.AllParks() {
		if ctx.Err() != nil {
			return
		}
		if err := e.refreshPark(ctx, park); err != nil {
			e.logger.Warn("engine refresh failed", "park", park.ID, "error", err)
		}
	}
}

func (e *Engine) refreshPark(ctx context.Context, park parks.Park) error {
	raws, err := e.provider.GetParkLive(ctx, park.ExternalID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.batches[park.ID] = batch{raws: raws, fetchedAt: e.now()}
	e.mu.Unlock()

	// Feed entries for unregistered entities (shows, meet-and-greets) are
	// kept in the batch but worth surfacing at debug level.
	registered := 0
	for _, raw := range raws {
		if _, ok := parks.AttractionByExternalID(raw.ID); ok {
			registered++
		}
	}
	e.logger.Debug("engine batch refreshed",
		"park", park.ID, "entities", len(raws), "registered", registered)
	return nil
}
