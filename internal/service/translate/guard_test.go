package translate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestGuard(cfg GuardConfig) (*Guard, *time.Time) {
	g := NewGuard(cfg)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }
	return g, &now
}

func TestGuard_AllowsFreshKey(t *testing.T) {
	g, _ := newTestGuard(GuardConfig{})

	d := g.CanTranslate("event:1:fr", 100)
	require.True(t, d.Allowed)
	require.Empty(t, d.Reason)
}

func TestGuard_PayloadTooLarge(t *testing.T) {
	g, _ := newTestGuard(GuardConfig{MaxTextLength: 50})

	d := g.CanTranslate("event:1:fr", 51)
	require.False(t, d.Allowed)
	require.Equal(t, ReasonPayloadTooLarge, d.Reason)

	// Denied independent of retry/cooldown state.
	g.MarkFailure("event:1:fr")
	g.MarkFailure("event:1:fr")
	g.MarkFailure("event:1:fr")
	d = g.CanTranslate("event:1:fr", 51)
	require.Equal(t, ReasonPayloadTooLarge, d.Reason)

	// At the boundary the payload is allowed through to the other checks.
	d = g.CanTranslate("event:2:fr", 50)
	require.True(t, d.Allowed)
}

func TestGuard_CooldownWindow(t *testing.T) {
	g, now := newTestGuard(GuardConfig{Cooldown: time.Minute})
	key := "event:1:hi"

	g.MarkFailure(key)

	d := g.CanTranslate(key, 10)
	require.False(t, d.Allowed)
	require.Equal(t, ReasonCooldownActive, d.Reason)

	// After the window elapses and retries are under the cap, allowed.
	*now = now.Add(time.Minute + time.Second)
	d = g.CanTranslate(key, 10)
	require.True(t, d.Allowed)
}

func TestGuard_RetryLimitOutlivesCooldown(t *testing.T) {
	g, now := newTestGuard(GuardConfig{MaxRetries: 3, Cooldown: time.Minute})
	key := "event:1:hi"

	for i := 0; i < 3; i++ {
		g.MarkFailure(key)
	}

	*now = now.Add(time.Hour)
	d := g.CanTranslate(key, 10)
	require.False(t, d.Allowed)
	require.Equal(t, ReasonRetryLimit, d.Reason)
}

func TestGuard_MarkSuccessClears(t *testing.T) {
	g, _ := newTestGuard(GuardConfig{})
	key := "comment:9:ja"

	g.MarkFailure(key)
	require.False(t, g.CanTranslate(key, 10).Allowed)

	g.MarkSuccess(key)
	require.True(t, g.CanTranslate(key, 10).Allowed)
	require.Zero(t, g.Len())
}

func TestGuard_SweepKeepsExhaustedEntries(t *testing.T) {
	g, now := newTestGuard(GuardConfig{MaxRetries: 2, Cooldown: time.Minute})

	g.MarkFailure("event:1:fr") // one failure, under the cap
	g.MarkFailure("event:2:fr")
	g.MarkFailure("event:2:fr") // exhausted

	*now = now.Add(time.Hour)
	evicted := g.Sweep(10 * time.Minute)
	require.Equal(t, 1, evicted)
	require.Equal(t, 1, g.Len())

	// The exhausted key still denies permanently.
	d := g.CanTranslate("event:2:fr", 10)
	require.Equal(t, ReasonRetryLimit, d.Reason)
	// The evicted key starts fresh.
	require.True(t, g.CanTranslate("event:1:fr", 10).Allowed)
}

func TestGuard_ConcurrentAccess(t *testing.T) {
	g := NewGuard(GuardConfig{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.MarkFailure("event:1:fr")
				g.CanTranslate("event:1:fr", 10)
				g.MarkSuccess("event:1:fr")
			}
		}()
	}
	wg.Wait()
}

func TestGuardKey(t *testing.T) {
	require.Equal(t, "event:42:fr", GuardKey("event", 42, "fr"))
	require.Equal(t, "comment:7:zh-Hans", GuardKey("comment", 7, "zh-Hans"))
}
