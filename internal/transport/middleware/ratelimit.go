package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a token bucket per viewer. Requests carrying a session id
// are keyed by it, the rest by client IP.
type RateLimiter struct {
	buckets      sync.Map // map[string]*bucket
	maxPerMinute int
	now          func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter allows maxPerMinute requests per key, refilled evenly.
// maxPerMinute must be positive.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	return &RateLimiter{maxPerMinute: maxPerMinute, now: time.Now}
}

// Run evicts idle buckets every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// Limit returns middleware that answers 429 once a key runs out of tokens.
func (rl *RateLimiter) Limit() Middleware {
	retryAfter := strconv.Itoa(60/rl.maxPerMinute + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(limitKey(r)) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limitKey(r *http.Request) string {
	if id, ok := ctxutil.SessionIDFromCtx(r.Context()); ok {
		return "session:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) allow(key string) bool {
	limit := float64(rl.maxPerMinute)
	now := rl.now()

	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: limit, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(limit, b.tokens+now.Sub(b.lastRefill).Seconds()*limit/60)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep() int {
	now := rl.now()
	removed := 0
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > bucketIdleTTL {
			rl.buckets.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
