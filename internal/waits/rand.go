package waits

import (
	"math/rand"
	"sync"
)

// Rand yields uniform draws in [0,1). It is the injectable random source
// for the weather heuristic, forecast jitter, and synthetic metadata, so
// deterministic tests can pin outcomes. Implementations shared across
// requests must be safe for concurrent use.
type Rand interface {
	Float64() float64
}

// lockedRand wraps math/rand with a mutex so one source can back
// concurrent request handling.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a concurrency-safe Rand seeded with seed.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
