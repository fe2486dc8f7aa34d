// Package session keeps one order form per visitor, keyed by an opaque id
// carried in a cookie.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tapconnect/internal/infrastructure/metrics"
	"tapconnect/internal/orderform"
)

type FormFactory func() *orderform.Form

type entry struct {
	form     *orderform.Form
	lastSeen time.Time
}

// Store holds at most max forms. When it is full, Create drops expired forms
// first and then the one idle the longest.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	newForm FormFactory
	ttl     time.Duration
	max     int
	now     func() time.Time
	logger  *zap.Logger
}

// NewStore builds a store. A max of zero or less means no limit.
func NewStore(newForm FormFactory, ttl time.Duration, max int, logger *zap.Logger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		newForm: newForm,
		ttl:     ttl,
		max:     max,
		now:     time.Now,
		logger:  logger,
	}
}

// Get returns the form for id and refreshes its idle timer.
func (s *Store) Get(id string) (*orderform.Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, id)
		return nil, false
	}
	e.lastSeen = now
	return e.form, true
}

func (s *Store) Create() (string, *orderform.Form) {
	id := uuid.NewString()
	form := s.newForm()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.max > 0 && len(s.entries) >= s.max {
		s.makeRoom(now)
	}
	s.entries[id] = &entry{form: form, lastSeen: now}

	return id, form
}

// Blank returns a fresh form that is not kept. It serves pages for visitors
// who have not edited anything yet.
func (s *Store) Blank() *orderform.Form {
	return s.newForm()
}

// makeRoom frees one slot. Caller holds s.mu.
func (s *Store) makeRoom(now time.Time) {
	if s.sweepLocked(now) > 0 && len(s.entries) < s.max {
		return
	}

	var oldestID string
	var oldest time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID == "" {
		return
	}

	delete(s.entries, oldestID)
	metrics.SessionEvictions.Inc()
	s.logger.Warn("session limit reached, evicting idle form",
		zap.Int("max", s.max),
		zap.Duration("idle", now.Sub(oldest)),
	)
}

// GetOrCreate returns the form for id, or a new form under a fresh id when id
// is unknown or expired. created reports which happened.
func (s *Store) GetOrCreate(id string) (string, *orderform.Form, bool) {
	if id != "" {
		if form, ok := s.Get(id); ok {
			return id, form, false
		}
	}
	newID, form := s.Create()
	return newID, form, true
}

// Sweep drops forms idle for longer than the TTL and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debug("expired sessions swept", zap.Int("removed", removed), zap.Int("remaining", s.Len()))
			}
		}
	}
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
