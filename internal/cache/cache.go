// Package cache provides the in-memory tiered TTL cache.
//
// Each tier is a distinct partition with its own TTL: an entry stored under
// one tier never satisfies a read for another, even under the same subject
// key. Entries are immutable once stored and replaced wholesale on refresh;
// expiry is checked at read time, so no background sweeper is needed.
package cache

import (
	"fmt"
	"sync"
	"time"
)

// Tier identifies a cache partition. TTL is a pure function of the tier.
type Tier string

const (
	TierIndividual  Tier = "individual"  // single-attraction records
	TierPark        Tier = "park"        // park snapshots
	TierAnalytics   Tier = "analytics"   // analytics-enriched responses
	TierPredictions Tier = "predictions" // forecast-enriched responses
)

// TTL returns the freshness window for a tier.
func (t Tier) TTL() time.Duration {
	switch t {
	case TierIndividual:
		return 120 * time.Second
	case TierPark:
		return 60 * time.Second
	case TierAnalytics:
		return 300 * time.Second
	case TierPredictions:
		return 600 * time.Second
	default:
		return 60 * time.Second
	}
}

type entry struct {
	payload  any
	storedAt time.Time
}

// Cache is a thread-safe tiered TTL cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
	now     func() time.Time
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
		now:     time.Now,
	}
}

// NewWithClock creates a cache with an injected clock. Test constructor.
func NewWithClock(enabled bool, now func() time.Time) *Cache {
	c := New(enabled)
	c.now = now
	return c
}

// Get retrieves a cached payload. fresh is true only when the entry exists
// under the requested tier and is within the tier's TTL.
func (c *Cache) Get(key string, tier Tier) (payload any, fresh bool) {
	if !c.enabled {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[partitionKey(key, tier)]
	if !exists || c.now().Sub(e.storedAt) >= tier.TTL() {
		return nil, false
	}
	return e.payload, true
}

// GetStale retrieves a cached payload regardless of age. Used by the last
// recovery level of the fallback chain; ok reports whether any entry exists
// under the tier at all.
func (c *Cache) GetStale(key string, tier Tier) (payload any, ok bool) {
	if !c.enabled {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[partitionKey(key, tier)]
	if !exists {
		return nil, false
	}
	return e.payload, true
}

// Put stores a payload under a tier. The previous entry, if any, is replaced
// wholesale.
func (c *Cache) Put(key string, tier Tier, payload any) {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[partitionKey(key, tier)] = entry{payload: payload, storedAt: c.now()}
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fresh := 0
	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) < tierOf(key).TTL() {
			fresh++
		}
	}
	return map[string]any{
		"enabled":    c.enabled,
		"total_keys": len(c.entries),
		"fresh_keys": fresh,
		"stale_keys": len(c.entries) - fresh,
	}
}

func partitionKey(key string, tier Tier) string {
	return fmt.Sprintf("%s:%s", tier, key)
}

func tierOf(partitioned string) Tier {
	for i := 0; i < len(partitioned); i++ {
		if partitioned[i] == ':' {
			return Tier(partitioned[:i])
		}
	}
	return Tier(partitioned)
}
