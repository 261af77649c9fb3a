package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/config"
	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
	"github.com/parkpulse/parkpulse-data/internal/waits"
)

type stubProvider struct {
	fail bool
}

func (s *stubProvider) GetParkLive(ctx context.Context, parkExternalID string) ([]themeparks.RawAttraction, error) {
	if s.fail {
		return nil, themeparks.ErrUnavailable
	}
	wait := 40
	return []themeparks.RawAttraction{{
		ID:     "9167db1d-e5e7-46da-a07f-ae30a87bc71c",
		Status: "Operating",
		Queue:  map[string]themeparks.RawQueue{themeparks.QueueStandby: {WaitTime: &wait}},
	}}, nil
}

func (s *stubProvider) GetAttractionLive(ctx context.Context, attractionExternalID string) (themeparks.RawAttraction, error) {
	if s.fail {
		return themeparks.RawAttraction{}, themeparks.ErrUnavailable
	}
	wait := 45
	return themeparks.RawAttraction{
		ID:     attractionExternalID,
		Status: "Operating",
		Queue:  map[string]themeparks.RawQueue{themeparks.QueueStandby: {WaitTime: &wait}},
	}, nil
}

func newTestRouter(failProvider bool) *chi.Mux {
	c := cache.New(true)
	svc := waits.NewService(waits.ServiceDeps{
		Provider: &stubProvider{fail: failProvider},
		Cache:    c,
	})
	h := New(svc, c, nil, &config.Config{})

	r := chi.NewRouter()
	r.Get("/health", h.HealthCheck)
	r.Get("/health/cache", h.HealthCheckCache)
	r.Get("/api/v1/parks", h.ListParks)
	r.Get("/api/v1/parks/{parkID}/waits", h.GetParkWaits)
	r.Get("/api/v1/parks/{parkID}/attractions", h.ListParkAttractions)
	r.Get("/api/v1/attractions/{attractionID}/wait", h.GetAttractionWait)
	return r
}

func doRequest(t *testing.T, r http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGetAttractionWaitOK(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/attractions/space-mountain/wait", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Cache") != "MISS" {
		t.Errorf("X-Cache = %q, want MISS on first fetch", rr.Header().Get("X-Cache"))
	}
	if rr.Header().Get("ETag") == "" {
		t.Error("missing ETag header")
	}

	var body struct {
		AttractionID string  `json:"attractionId"`
		WaitMinutes  int     `json:"waitMinutes"`
		Status       string  `json:"status"`
		Confidence   float64 `json:"confidence"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.AttractionID != "space-mountain" || body.WaitMinutes != 45 || body.Status != "OPERATING" {
		t.Errorf("body = %+v", body)
	}
}

func TestGetAttractionWaitCacheHitHeader(t *testing.T) {
	r := newTestRouter(false)
	doRequest(t, r, "/api/v1/attractions/space-mountain/wait", nil)
	rr := doRequest(t, r, "/api/v1/attractions/space-mountain/wait", nil)

	if rr.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache = %q, want HIT on repeat fetch", rr.Header().Get("X-Cache"))
	}
}

func TestGetAttractionWaitNotModified(t *testing.T) {
	r := newTestRouter(false)
	first := doRequest(t, r, "/api/v1/attractions/space-mountain/wait", nil)
	etag := first.Header().Get("ETag")

	rr := doRequest(t, r, "/api/v1/attractions/space-mountain/wait",
		http.Header{"If-None-Match": {etag}})
	if rr.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("304 must not carry a body")
	}
}

func TestGetAttractionWaitPredictionFlag(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/attractions/space-mountain/wait?prediction=true", nil)

	var body struct {
		Prediction []json.RawMessage `json:"prediction"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Prediction) != 12 {
		t.Errorf("prediction points = %d, want 12", len(body.Prediction))
	}
}

func TestGetAttractionWaitUnknownID(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/attractions/matterhorn/wait", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var body struct {
		Error struct {
			Code     string   `json:"code"`
			ValidIDs []string `json:"validIds"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "UNKNOWN_ID" {
		t.Errorf("code = %s, want UNKNOWN_ID", body.Error.Code)
	}
	if len(body.Error.ValidIDs) == 0 {
		t.Error("404 body should list valid identifiers")
	}
}

func TestGetAttractionWaitDegraded(t *testing.T) {
	r := newTestRouter(true)
	rr := doRequest(t, r, "/api/v1/attractions/space-mountain/wait", nil)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Fallback struct {
			Status     string  `json:"status"`
			Confidence float64 `json:"confidence"`
		} `json:"fallback"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "SERVICE_DEGRADED" {
		t.Errorf("code = %s, want SERVICE_DEGRADED", body.Error.Code)
	}
	if body.Fallback.Status != "CLOSED" || body.Fallback.Confidence != 0 {
		t.Errorf("fallback = %+v, want CLOSED with zero confidence", body.Fallback)
	}
}

func TestGetParkWaitsOK(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/parks/magic-kingdom/waits", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		ParkID      string                     `json:"parkId"`
		Attractions map[string]json.RawMessage `json:"attractions"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.ParkID != "magic-kingdom" {
		t.Errorf("parkId = %s", body.ParkID)
	}
	if len(body.Attractions) != 7 {
		t.Errorf("attraction count = %d, want 7 registered", len(body.Attractions))
	}
}

func TestListParks(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/parks", nil)

	var body struct {
		Parks []struct {
			ID string `json:"id"`
		} `json:"parks"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Parks) != 4 {
		t.Fatalf("park count = %d, want 4", len(body.Parks))
	}
	if body.Parks[0].ID != "animal-kingdom" {
		t.Errorf("first park = %s, want sorted order", body.Parks[0].ID)
	}
}

func TestListParkAttractionsUnknownPark(t *testing.T) {
	r := newTestRouter(false)
	rr := doRequest(t, r, "/api/v1/parks/six-flags/attractions", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(false)

	if rr := doRequest(t, r, "/health", nil); rr.Code != http.StatusOK {
		t.Errorf("/health status = %d", rr.Code)
	}
	if rr := doRequest(t, r, "/health/cache", nil); rr.Code != http.StatusOK {
		t.Errorf("/health/cache status = %d", rr.Code)
	}
}
