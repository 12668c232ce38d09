package translate

import (
	"fmt"
	"sync"
	"time"
)

// Guard defaults.
const (
	DefaultMaxTextLength = 1000
	DefaultMaxRetries    = 3
	DefaultCooldown      = time.Minute
)

// Denial reasons reported by the guard.
const (
	ReasonPayloadTooLarge = "payload too large"
	ReasonCooldownActive  = "cooldown active"
	ReasonRetryLimit      = "retry limit reached"
)

// Decision is the guard's verdict for one attempt.
type Decision struct {
	Allowed bool
	Reason  string
}

// GuardConfig bounds translation attempts per key.
type GuardConfig struct {
	MaxTextLength int
	MaxRetries    int
	Cooldown      time.Duration
}

type guardEntry struct {
	retries       int
	cooldownUntil time.Time
}

// Guard is an in-process circuit breaker per translation target. It
// prevents a persistently failing upstream from being retried on every
// page view or duplicate trigger. State is process-local; a restart
// resets retry budgets, which costs at most one extra retry window.
type Guard struct {
	cfg GuardConfig

	mu      sync.Mutex
	entries map[string]*guardEntry
	now     func() time.Time
}

// NewGuard creates a guard with defaults applied for zero config values.
func NewGuard(cfg GuardConfig) *Guard {
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = DefaultMaxTextLength
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	return &Guard{
		cfg:     cfg,
		entries: make(map[string]*guardEntry),
		now:     time.Now,
	}
}

// GuardKey builds the canonical guard key for a translation target.
func GuardKey(kind string, entityID int64, locale string) string {
	return fmt.Sprintf("%s:%d:%s", kind, entityID, locale)
}

// CanTranslate decides whether an attempt for key may proceed. Rules
// apply in order: payload cap, cooldown window, retry cap.
func (g *Guard) CanTranslate(key string, payloadLen int) Decision {
	if payloadLen > g.cfg.MaxTextLength {
		return Decision{Allowed: false, Reason: ReasonPayloadTooLarge}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[key]
	if !ok {
		return Decision{Allowed: true}
	}

	if g.now().Before(entry.cooldownUntil) {
		return Decision{Allowed: false, Reason: ReasonCooldownActive}
	}
	if entry.retries >= g.cfg.MaxRetries {
		return Decision{Allowed: false, Reason: ReasonRetryLimit}
	}
	return Decision{Allowed: true}
}

// MarkFailure records a failed attempt: increments the retry count and
// arms the cooldown window.
func (g *Guard) MarkFailure(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[key]
	if !ok {
		entry = &guardEntry{}
		g.entries[key] = entry
	}
	entry.retries++
	entry.cooldownUntil = g.now().Add(g.cfg.Cooldown)
}

// MarkSuccess clears all state for key.
func (g *Guard) MarkSuccess(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

// Sweep evicts entries whose cooldown lapsed at least ttl ago and whose
// retry budget is not exhausted. Exhausted entries are kept: they deny
// permanently until an operator retry or a process restart. Returns the
// number of evicted entries.
func (g *Guard) Sweep(ttl time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	evicted := 0
	for key, entry := range g.entries {
		if entry.retries >= g.cfg.MaxRetries {
			continue
		}
		if now.After(entry.cooldownUntil.Add(ttl)) {
			delete(g.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of tracked keys.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
