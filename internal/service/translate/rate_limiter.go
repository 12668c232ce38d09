package translate

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"gathr/backend/internal/logger"
)

// DefaultRateLimit is the default QPS limit for provider calls.
const DefaultRateLimit = 10

// RateLimiter throttles outbound provider calls across the whole
// process. One limiter is shared by every Translator the factory
// builds, so a burst of fan-out work cannot exceed the configured QPS.
type RateLimiter struct {
	mu  sync.RWMutex
	lim *rate.Limiter
}

// NewRateLimiter creates a limiter allowing qps requests per second
// with an equal burst.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{lim: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a token is available or ctx is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.RLock()
	lim := r.lim
	r.mu.RUnlock()
	return lim.Wait(ctx)
}

// SetLimit changes the QPS at runtime. Settings updates call this so
// a new limit applies without a restart.
func (r *RateLimiter) SetLimit(qps int) {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	r.mu.Lock()
	r.lim.SetLimit(rate.Limit(qps))
	r.lim.SetBurst(qps)
	r.mu.Unlock()
	logger.Info("translate rate limit updated", "module", "translate", "action", "update", "resource", "provider", "result", "ok", "qps", qps)
}

// GetLimit returns the current QPS.
func (r *RateLimiter) GetLimit() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int(r.lim.Limit())
}
