package payments

import (
	"sync"
	"time"

	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type timerScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	Log     *zap.Logger
}

// NewScheduler owns the delayed follow-up actions of the payment flow:
// the post-success redirect countdown and the post-failure cancel grace
// delay. Stop cancels every pending timer; nothing fires afterwards.
func NewScheduler(logger *zap.Logger) contracts.Scheduler {
	return &timerScheduler{
		timers: make(map[string]*time.Timer),
		Log:    logger,
	}
}

func (s *timerScheduler) Schedule(id string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	// Re-scheduling the same id replaces the pending action.
	if existing, ok := s.timers[id]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// Run only while still the registered timer for this id: a cancel
		// or replacement that won the lock race makes this firing stale.
		if s.stopped || s.timers[id] != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		fn()
	})
	s.timers[id] = timer
}

func (s *timerScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, id)
	return true
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.Log.Info("payment scheduler stopped")
}
