package waits

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/parks"
	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
)

// LiveProvider is the upstream live status client. Failures must surface as
// typed errors, never malformed payloads.
type LiveProvider interface {
	GetParkLive(ctx context.Context, parkExternalID string) ([]themeparks.RawAttraction, error)
	GetAttractionLive(ctx context.Context, attractionExternalID string) (themeparks.RawAttraction, error)
}

// BatchSource is the pre-aggregated "engine": a batch of raw statuses per
// park, refreshed out-of-band. ok is false when no sufficiently fresh batch
// exists, which the fallback chain treats as an engine failure.
type BatchSource interface {
	ParkBatch(parkID string) (batch []themeparks.RawAttraction, ok bool)
}

// Recorder receives computed results for best-effort historical
// persistence. Implementations must return immediately; failures are theirs
// to log and never reach the response path.
type Recorder interface {
	RecordWaitSample(parkID string, rec WaitTimeRecord)
	RecordParkAnalytics(parkID string, snap ParkSnapshot)
}

// QueryOptions are the individual-endpoint enrichment toggles.
type QueryOptions struct {
	Metadata   bool
	Analytics  bool
	Prediction bool
}

// DegradedError is returned when every recovery level failed and no cached
// entry exists. It carries a safe minimal fallback record so the transport
// layer can serve a 503 body instead of a bare failure.
type DegradedError struct {
	Fallback WaitTimeRecord
}

func (e *DegradedError) Error() string {
	return "service degraded: live data unavailable and no cached entry"
}

// Service is the request orchestrator. It composes cache, engine, provider,
// enrichment, and persistence per incoming query, walking an ordered list
// of recovery strategies instead of nesting error handling.
type Service struct {
	provider LiveProvider
	engine   BatchSource // may be nil when no batch source is configured
	cache    *cache.Cache
	recorder Recorder
	forecast *ForecastGenerator
	weather  *WeatherHeuristic
	rng      Rand
	logger   *slog.Logger
	now      func() time.Time
}

// ServiceDeps bundles Service dependencies.
type ServiceDeps struct {
	Provider LiveProvider
	Engine   BatchSource
	Cache    *cache.Cache
	Recorder Recorder
	Rand     Rand
	Logger   *slog.Logger
	Now      func() time.Time // defaults to time.Now
}

// NewService creates the orchestrator.
func NewService(deps ServiceDeps) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = NewLockedRand(time.Now().UnixNano())
	}
	return &Service{
		provider: deps.Provider,
		engine:   deps.Engine,
		cache:    deps.Cache,
		recorder: deps.Recorder,
		forecast: NewForecastGenerator(deps.Rand, deps.Logger),
		weather:  NewWeatherHeuristic(deps.Rand),
		rng:      deps.Rand,
		logger:   deps.Logger,
		now:      deps.Now,
	}
}

// --------------------------------------------------------------------------
// Individual attraction flow
// --------------------------------------------------------------------------

// AttractionWait resolves one attraction's current wait, enriched per opts.
// Fallback chain: fresh cache, engine batch, direct provider call, stale
// cache, degraded error.
func (s *Service) AttractionWait(ctx context.Context, attractionID string, opts QueryOptions) (resp *AttractionResponse, cached bool, err error) {
	attraction, err := parks.AttractionByID(attractionID)
	if err != nil {
		return nil, false, err
	}
	park, err := parks.ParkByID(attraction.ParkID)
	if err != nil {
		return nil, false, err
	}

	tier := tierFor(opts)
	key := attractionKey(attractionID, opts)

	if payload, fresh := s.cache.Get(key, tier); fresh {
		if resp, ok := payload.(*AttractionResponse); ok {
			return resp, true, nil
		}
	}

	// Ordered recovery strategies: engine batch first, then the one-off
	// provider call. Each returns success or failure; nothing throws past
	// the orchestrator.
	strategies := []struct {
		name  string
		fetch func(context.Context) (themeparks.RawAttraction, error)
	}{
		{"engine", func(ctx context.Context) (themeparks.RawAttraction, error) {
			return s.engineAttraction(attraction)
		}},
		{"direct", func(ctx context.Context) (themeparks.RawAttraction, error) {
			return s.provider.GetAttractionLive(ctx, attraction.ExternalID)
		}},
	}

	for _, strat := range strategies {
		raw, err := strat.fetch(ctx)
		if err != nil {
			s.logger.Warn("wait lookup source failed",
				"source", strat.name, "attraction", attractionID, "error", err)
			continue
		}

		rec := Normalize(attractionID, raw, s.now())
		resp := s.enrich(rec, attraction, park, opts)

		s.cache.Put(key, tier, resp)
		s.persistWait(attraction.ParkID, rec)
		return resp, false, nil
	}

	// Stale cache beats a hard failure.
	if payload, ok := s.cache.GetStale(key, tier); ok {
		if resp, ok := payload.(*AttractionResponse); ok {
			s.logger.Warn("serving stale cached wait", "attraction", attractionID)
			return resp, true, nil
		}
	}

	return nil, false, &DegradedError{Fallback: WaitTimeRecord{
		AttractionID: attractionID,
		Status:       StatusClosed,
		LastUpdated:  s.now(),
		Confidence:   0,
	}}
}

// enrich attaches the optional blocks concurrently. Enrichments are
// independent and partial-failure tolerant: each writes only its own field.
func (s *Service) enrich(rec WaitTimeRecord, attraction parks.Attraction, park parks.Park, opts QueryOptions) *AttractionResponse {
	resp := &AttractionResponse{WaitTimeRecord: rec}
	now := s.now()

	var wg sync.WaitGroup
	if opts.Metadata {
		wg.Add(1)
		go func() {
			defer wg.Done()
			weather := s.weather.Assess(park, now.Hour(), int(now.Month()))
			resp.Metadata = BuildCrowdMetadata(rec, attraction, weather, now, s.rng)
		}()
	}
	if opts.Analytics {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp.Analytics = BuildAttractionAnalytics(rec, attraction)
		}()
	}
	if opts.Prediction {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp.Forecast = s.forecast.Generate(rec.WaitMinutes, now.Hour(), false)
		}()
	}
	wg.Wait()
	return resp
}

// engineAttraction pulls one attraction out of the engine's park batch.
func (s *Service) engineAttraction(attraction parks.Attraction) (themeparks.RawAttraction, error) {
	if s.engine == nil {
		return themeparks.RawAttraction{}, fmt.Errorf("no batch source configured")
	}
	batch, ok := s.engine.ParkBatch(attraction.ParkID)
	if !ok {
		return themeparks.RawAttraction{}, fmt.Errorf("no fresh batch for park %s", attraction.ParkID)
	}
	for _, raw := range batch {
		if raw.ID == attraction.ExternalID {
			return raw, nil
		}
	}
	return themeparks.RawAttraction{}, fmt.Errorf("attraction %s absent from batch", attraction.ID)
}

// --------------------------------------------------------------------------
// Park flow
// --------------------------------------------------------------------------

// ParkWaits resolves the full park snapshot through the same fallback
// chain, batch-scoped.
func (s *Service) ParkWaits(ctx context.Context, parkID string) (snap *ParkSnapshot, cached bool, err error) {
	park, err := parks.ParkByID(parkID)
	if err != nil {
		return nil, false, err
	}
	attractions := parks.ParkAttractions(parkID)

	key := "park:" + parkID
	if payload, fresh := s.cache.Get(key, cache.TierPark); fresh {
		if snap, ok := payload.(*ParkSnapshot); ok {
			return snap, true, nil
		}
	}

	strategies := []struct {
		name  string
		fetch func(context.Context) ([]themeparks.RawAttraction, error)
	}{
		{"engine", func(ctx context.Context) ([]themeparks.RawAttraction, error) {
			if s.engine == nil {
				return nil, fmt.Errorf("no batch source configured")
			}
			if batch, ok := s.engine.ParkBatch(parkID); ok {
				return batch, nil
			}
			return nil, fmt.Errorf("no fresh batch for park %s", parkID)
		}},
		{"direct", func(ctx context.Context) ([]themeparks.RawAttraction, error) {
			return s.provider.GetParkLive(ctx, park.ExternalID)
		}},
	}

	for _, strat := range strategies {
		batch, err := strat.fetch(ctx)
		if err != nil {
			s.logger.Warn("park lookup source failed",
				"source", strat.name, "park", parkID, "error", err)
			continue
		}

		snap := s.buildSnapshot(park, attractions, batch)
		s.cache.Put(key, cache.TierPark, snap)
		s.persistSnapshot(parkID, snap)
		return snap, false, nil
	}

	if payload, ok := s.cache.GetStale(key, cache.TierPark); ok {
		if snap, ok := payload.(*ParkSnapshot); ok {
			s.logger.Warn("serving stale cached snapshot", "park", parkID)
			return snap, true, nil
		}
	}

	return nil, false, &DegradedError{Fallback: WaitTimeRecord{
		AttractionID: parkID,
		Status:       StatusClosed,
		LastUpdated:  s.now(),
		Confidence:   0,
	}}
}

// buildSnapshot normalizes the batch and aggregates it, running the
// weather enrichment alongside aggregation.
func (s *Service) buildSnapshot(park parks.Park, attractions []parks.Attraction, batch []themeparks.RawAttraction) *ParkSnapshot {
	now := s.now()

	byExternal := make(map[string]themeparks.RawAttraction, len(batch))
	for _, raw := range batch {
		byExternal[raw.ID] = raw
	}

	records := make(map[string]WaitTimeRecord, len(attractions))
	for _, a := range attractions {
		raw, ok := byExternal[a.ExternalID]
		if !ok {
			// Absent from the live feed: best-effort closed record.
			raw = themeparks.RawAttraction{ID: a.ExternalID}
		}
		records[a.ID] = Normalize(a.ID, raw, now)
	}

	var (
		wg      sync.WaitGroup
		weather WeatherAssessment
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		weather = s.weather.Assess(park, now.Hour(), int(now.Month()))
	}()

	snap := BuildParkSnapshot(park, attractions, records, now)
	wg.Wait()
	snap.Weather = &weather

	return &snap
}

// --------------------------------------------------------------------------
// Persistence dispatch
// --------------------------------------------------------------------------

func (s *Service) persistWait(parkID string, rec WaitTimeRecord) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordWaitSample(parkID, rec)
}

func (s *Service) persistSnapshot(parkID string, snap *ParkSnapshot) {
	if s.recorder == nil {
		return
	}
	for _, rec := range snap.Attractions {
		s.recorder.RecordWaitSample(parkID, rec)
	}
	s.recorder.RecordParkAnalytics(parkID, *snap)
}

// --------------------------------------------------------------------------
// Cache key shape
// --------------------------------------------------------------------------

// tierFor maps the query shape to its cache partition: prediction-enriched
// responses live in the long-TTL predictions tier, analytics-enriched ones
// in the analytics tier, plain records in the individual tier.
func tierFor(opts QueryOptions) cache.Tier {
	switch {
	case opts.Prediction:
		return cache.TierPredictions
	case opts.Analytics:
		return cache.TierAnalytics
	default:
		return cache.TierIndividual
	}
}

// attractionKey scopes the cache key by subject and query shape so
// differently-enriched responses never alias.
func attractionKey(attractionID string, opts QueryOptions) string {
	return "attraction:" + attractionID +
		":m" + strconv.FormatBool(opts.Metadata) +
		":a" + strconv.FormatBool(opts.Analytics) +
		":p" + strconv.FormatBool(opts.Prediction)
}
