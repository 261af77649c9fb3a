package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
)

type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
	raws  []themeparks.RawAttraction
}

func (p *countingProvider) GetParkLive(ctx context.Context, parkExternalID string) ([]themeparks.RawAttraction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.raws, nil
}

func TestRefreshAllPopulatesEveryPark(t *testing.T) {
	provider := &countingProvider{raws: []themeparks.RawAttraction{{ID: "x", Status: "Operating"}}}
	e := New(provider, time.Minute, 5*time.Minute, nil)

	e.RefreshAll(context.Background())

	for _, parkID := range []string{"magic-kingdom", "epcot", "hollywood-studios", "animal-kingdom"} {
		batch, ok := e.ParkBatch(parkID)
		if !ok {
			t.Errorf("no batch for %s after refresh", parkID)
			continue
		}
		if len(batch) != 1 {
			t.Errorf("%s batch len = %d, want 1", parkID, len(batch))
		}
	}
	if provider.calls != 4 {
		t.Errorf("provider called %d times, want 4", provider.calls)
	}
}

func TestParkBatchMissWhenNeverRefreshed(t *testing.T) {
	e := New(&countingProvider{}, time.Minute, 5*time.Minute, nil)
	if _, ok := e.ParkBatch("magic-kingdom"); ok {
		t.Error("unrefreshed engine should report a miss")
	}
}

func TestParkBatchAgesOut(t *testing.T) {
	provider := &countingProvider{raws: []themeparks.RawAttraction{{ID: "x"}}}
	e := New(provider, time.Minute, 5*time.Minute, nil)
	e.RefreshAll(context.Background())

	if _, ok := e.ParkBatch("epcot"); !ok {
		t.Fatal("fresh batch should serve")
	}

	e.now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	if _, ok := e.ParkBatch("epcot"); ok {
		t.Error("batch past the freshness bound should report a miss")
	}
}

func TestFailedRefreshKeepsPreviousBatch(t *testing.T) {
	provider := &countingProvider{raws: []themeparks.RawAttraction{{ID: "x"}}}
	e := New(provider, time.Minute, 5*time.Minute, nil)
	e.RefreshAll(context.Background())

	provider.mu.Lock()
	provider.err = errors.New("upstream down")
	provider.mu.Unlock()
	e.RefreshAll(context.Background())

	if _, ok := e.ParkBatch("magic-kingdom"); !ok {
		t.Error("failed refresh should leave the previous batch in place")
	}
}

func TestRefreshAllStopsOnCancelledContext(t *testing.T) {
	provider := &countingProvider{}
	e := New(provider, time.Minute, 5*time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.RefreshAll(ctx)

	if provider.calls != 0 {
		t.Errorf("provider called %d times under cancelled context, want 0", provider.calls)
	}
}
