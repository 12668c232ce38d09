package scheduler

import (
	"context"
	"sync"
	"time"

	"gathr/backend/internal/logger"
	"gathr/backend/internal/service"
	"gathr/backend/internal/service/translate"
)

// guardTTL is how long a lapsed cooldown entry survives before eviction.
const guardTTL = 10 * time.Minute

// Scheduler periodically repairs stuck translation work: pending rows
// left behind by a crash are re-run, and stale guard entries evicted.
type Scheduler struct {
	translations service.TranslationService
	guard        *translate.Guard
	interval     time.Duration
	pendingTTL   time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
	cancelFunc   context.CancelFunc // cancels the current sweep
	mu           sync.Mutex         // protects cancelFunc
}

func New(translations service.TranslationService, guard *translate.Guard, interval, pendingTTL time.Duration) *Scheduler {
	return &Scheduler{
		translations: translations,
		guard:        guard,
		interval:     interval,
		pendingTTL:   pendingTTL,
		stopCh:       make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing sweep first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	requeued, err := s.translations.RequeueStalePending(ctx, s.pendingTTL)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("translation sweep cancelled", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "cancelled")
			return
		}
		logger.Error("translation sweep failed", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "failed", "error", err)
		return
	}

	evicted := s.guard.Sweep(guardTTL)
	if requeued > 0 || evicted > 0 {
		logger.Info("translation sweep completed", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok", "requeued", requeued, "guard_evicted", evicted)
	}
}
