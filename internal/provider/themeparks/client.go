// Package themeparks provides the HTTP client for the upstream live status
// provider.
//
// The provider uses entity-scoped GET endpoints and optional API-key auth.
// Rate limiting is handled via a token bucket limiter; every call carries a
// bounded timeout so upstream non-response surfaces as ErrUnavailable rather
// than an indefinite wait.
package themeparks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrUnavailable is the typed failure for any provider call that did not
// yield a usable payload: transport error, timeout, or non-200 status.
// Callers branch on it with errors.Is to drive the fallback chain.
var ErrUnavailable = errors.New("live data provider unavailable")

// Client is the HTTP client for the live status provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a provider client with rate limiting and a per-request
// timeout.
func NewClient(baseURL, apiKey string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// GetParkLive fetches raw live status for every attraction in a park.
func (c *Client) GetParkLive(ctx context.Context, parkExternalID string) ([]RawAttraction, error) {
	var resp liveResponse
	if err := c.get(ctx, fmt.Sprintf("/entity/%s/live", parkExternalID), &resp); err != nil {
		return nil, err
	}
	return resp.LiveData, nil
}

// GetAttractionLive fetches raw live status for a single attraction.
func (c *Client) GetAttractionLive(ctx context.Context, attractionExternalID string) (RawAttraction, error) {
	var resp liveResponse
	if err := c.get(ctx, fmt.Sprintf("/entity/%s/live", attractionExternalID), &resp); err != nil {
		return RawAttraction{}, err
	}
	if len(resp.LiveData) == 0 {
		return RawAttraction{}, fmt.Errorf("%w: empty live payload for %s", ErrUnavailable, attractionExternalID)
	}
	return resp.LiveData[0], nil
}

// liveResponse is the common provider response wrapper.
type liveResponse struct {
	ID       string          `json:"id"`
	LiveData []RawAttraction `json:"liveData"`
}

// get performs a rate-limited GET request to a provider endpoint.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d: %s", ErrUnavailable, path, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
