// Package history is the persistence orchestrator: best-effort, append-only
// writes of computed results to the historical store. Writes are dispatched
// on detached goroutines with their own error boundary and never sit on the
// response's critical path; durability is not guaranteed.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parkpulse/parkpulse-data/internal/waits"
)

// Store is the write-only contract against the historical store. This
// subsystem needs no read contract.
type Store interface {
	AppendWaitTimeSample(ctx context.Context, s WaitSample) error
	AppendAnalyticsSample(ctx context.Context, s AnalyticsSample) error
}

// WaitSample is one appended wait-time observation.
type WaitSample struct {
	ID           uuid.UUID
	ParkID       string
	AttractionID string
	WaitMinutes  int
	Status       waits.Status
	Confidence   float64
	RecordedAt   time.Time
}

// AnalyticsSample is one appended park-aggregate observation.
type AnalyticsSample struct {
	ID              uuid.UUID
	ParkID          string
	AverageWait     float64
	CrowdLevel      waits.CrowdLevel
	EfficiencyScore int
	AreaHeatmap     map[string]float64
	RecordedAt      time.Time
}

// PostgresStore persists samples through the shared pgx pool's prepared
// statements.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// AppendWaitTimeSample inserts one wait-time sample row.
func (s *PostgresStore) AppendWaitTimeSample(ctx context.Context, sample WaitSample) error {
	_, err := s.pool.Exec(ctx, "append_wait_sample",
		sample.ID, sample.ParkID, sample.AttractionID,
		sample.WaitMinutes, string(sample.Status), sample.Confidence, sample.RecordedAt)
	if err != nil {
		return fmt.Errorf("append wait sample: %w", err)
	}
	return nil
}

// AppendAnalyticsSample inserts one park-analytics sample row. The heatmap
// is stored as jsonb.
func (s *PostgresStore) AppendAnalyticsSample(ctx context.Context, sample AnalyticsSample) error {
	heatmap, err := json.Marshal(sample.AreaHeatmap)
	if err != nil {
		return fmt.Errorf("marshal heatmap: %w", err)
	}
	_, err = s.pool.Exec(ctx, "append_analytics_sample",
		sample.ID, sample.ParkID, sample.AverageWait,
		string(sample.CrowdLevel), sample.EfficiencyScore, heatmap, sample.RecordedAt)
	if err != nil {
		return fmt.Errorf("append analytics sample: %w", err)
	}
	return nil
}
