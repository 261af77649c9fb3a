package api

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/parkpulse/parkpulse-data/internal/api/respond"
)

// --------------------------------------------------------------------------
// Request timing middleware
// --------------------------------------------------------------------------

// TimingMiddleware reports server-side processing time in X-Process-Time.
// The header is stamped when the handler first writes, so it covers cache
// lookups and any provider round trips but not body transfer.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&timingWriter{ResponseWriter: w, start: time.Now()}, r)
	})
}

type timingWriter struct {
	http.ResponseWriter
	start   time.Time
	stamped bool
}

func (t *timingWriter) WriteHeader(code int) {
	if !t.stamped {
		t.stamped = true
		elapsed := float64(time.Since(t.start).Microseconds()) / 1000.0
		t.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", elapsed))
	}
	t.ResponseWriter.WriteHeader(code)
}

func (t *timingWriter) Write(b []byte) (int, error) {
	if !t.stamped {
		t.WriteHeader(http.StatusOK)
	}
	return t.ResponseWriter.Write(b)
}

// --------------------------------------------------------------------------
// Rate limiting middleware (IP-based token bucket)
// --------------------------------------------------------------------------

// ipRateLimiter hands out one token bucket per client IP. Buckets refill at
// the configured per-window rate with a burst of half the window allowance,
// so short spikes pass while sustained overuse is throttled.
type ipRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rate    rate.Limit
	burst   int
}

func newIPRateLimiter(requestsPerWindow int, window time.Duration) *ipRateLimiter {
	burst := requestsPerWindow / 2
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		buckets: make(map[string]*rate.Limiter),
		rate:    rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:   burst,
	}
}

func (l *ipRateLimiter) bucket(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[ip]; ok {
		return b
	}
	b := rate.NewLimiter(l.rate, l.burst)
	l.buckets[ip] = b
	return b
}

// RateLimitMiddleware returns middleware that rate-limits by client IP.
// Every response carries the window allowance in X-RateLimit-Limit; denials
// add a Retry-After derived from the configured window.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(requestsPerWindow, window)
	retryAfter := strconv.Itoa(int(window.Seconds()))
	allowance := strconv.Itoa(requestsPerWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			w.Header().Set("X-RateLimit-Limit", allowance)
			if !limiter.bucket(ip).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				respond.WriteError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
