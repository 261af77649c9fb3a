package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/parkpulse/parkpulse-data/internal/waits"
)

// Recorder dispatches fire-and-forget history writes. Every Record method
// returns immediately; the write runs on a detached goroutine with its own
// timeout, detached from any request context so an early response cannot
// cancel it. Failures are logged and go nowhere else.
type Recorder struct {
	store   Store // nil disables recording entirely
	timeout time.Duration
	logger  *slog.Logger
}

// NewRecorder creates a recorder. A nil store yields a no-op recorder,
// which is how history stays optional in deployments without Postgres.
func NewRecorder(store Store, timeout time.Duration, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recorder{store: store, timeout: timeout, logger: logger}
}

// RecordWaitSample appends one wait-time observation, best-effort.
func (r *Recorder) RecordWaitSample(parkID string, rec waits.WaitTimeRecord) {
	if r.store == nil {
		return
	}
	sample := WaitSample{
		ID:           uuid.New(),
		ParkID:       parkID,
		AttractionID: rec.AttractionID,
		WaitMinutes:  rec.WaitMinutes,
		Status:       rec.Status,
		Confidence:   rec.Confidence,
		RecordedAt:   rec.LastUpdated,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.store.AppendWaitTimeSample(ctx, sample); err != nil {
			r.logger.Warn("history wait sample write failed",
				"attraction", sample.AttractionID, "error", err)
		}
	}()
}

// RecordParkAnalytics appends one park-aggregate observation, best-effort.
func (r *Recorder) RecordParkAnalytics(parkID string, snap waits.ParkSnapshot) {
	if r.store == nil {
		return
	}
	sample := AnalyticsSample{
		ID:          uuid.New(),
		ParkID:      parkID,
		AverageWait: snap.AverageWaitTime,
		CrowdLevel:  snap.CrowdLevel,
		RecordedAt:  snap.GeneratedAt,
	}
	if snap.Analytics != nil {
		sample.EfficiencyScore = snap.Analytics.EfficiencyScore
		sample.AreaHeatmap = snap.Analytics.Heatmap
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.store.AppendAnalyticsSample(ctx, sample); err != nil {
			r.logger.Warn("history analytics sample write failed",
				"park", sample.ParkID, "error", err)
		}
	}()
}
