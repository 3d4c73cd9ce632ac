package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
)

// Store keeps live viewer sessions in memory and expires idle ones.
type Store struct {
	mu       sync.RWMutex
	loader   loader
	logger   *zap.Logger
	ttl      time.Duration
	interval time.Duration
	sessions map[string]*entry
	onCount  func(int)
	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	controller *Controller
	lastSeen   time.Time
}

// NewStore constructs a session store. onCount, when non-nil, receives
// the live session count after every change (used for metrics).
func NewStore(l loader, logger *zap.Logger, cfg config.SessionConfig, onCount func(int)) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Store{
		loader:   l,
		logger:   logger,
		ttl:      ttl,
		interval: interval,
		sessions: map[string]*entry{},
		onCount:  onCount,
		stop:     make(chan struct{}),
	}
}

// Create opens a new session. A non-empty seed selects that marathon
// immediately; this mirrors the original page's query parameter, which
// applied only on the very first load and never again.
func (s *Store) Create(ctx context.Context, seed string) *Controller {
	controller := newController(uuid.NewString(), s.loader, s.logger)

	s.mu.Lock()
	s.sessions[controller.ID()] = &entry{controller: controller, lastSeen: time.Now()}
	count := len(s.sessions)
	s.mu.Unlock()
	s.reportCount(count)

	if seed != "" {
		controller.Select(ctx, seed)
	}
	return controller
}

// Get returns a session by id and marks it as recently used.
func (s *Store) Get(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.controller, true
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper launches the TTL eviction loop.
func (s *Store) StartSweeper() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the sweeper.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	removed := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("expired idle sessions", zap.Int("removed", removed), zap.Int("remaining", count))
	}
	s.reportCount(count)
}

func (s *Store) reportCount(n int) {
	if s.onCount != nil {
		s.onCount(n)
	}
}
