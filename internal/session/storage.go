package session

import (
	"sync"
	"time"

	"univar/domain/core"
	"univar/domain/dataset"
	"univar/ports"
)

// Store keeps one dataset per browser session in memory. Entries idle for
// longer than the TTL are dropped the next time the store is touched.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry
}

type entry struct {
	dataset  *dataset.Dataset
	lastSeen time.Time
}

var _ ports.DatasetStore = (*Store)(nil)

// NewStore creates an empty store
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// NewID returns a fresh session identifier
func NewID() string {
	return core.NewID().String()
}

// Put replaces the dataset held for sessionID
func (s *Store) Put(sessionID string, ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.entries[sessionID] = &entry{dataset: ds, lastSeen: now}
}

// Get returns the dataset for sessionID and refreshes its lifetime
func (s *Store) Get(sessionID string) (*dataset.Dataset, bool) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.expired(e, now) {
		delete(s.entries, sessionID)
		return nil, false
	}
	e.lastSeen = now
	return e.dataset, true
}

// Delete forgets the dataset for sessionID
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
		}
	}
}
