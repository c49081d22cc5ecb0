package catalog

import (
	"sync"
	"time"

	"github.com/eventpulse/eventpulse/internal/domain"
)

// Store holds the current event catalog in memory. Reads serve the latest
// snapshot; Replace swaps it wholesale after a successful fetch. A failed
// fetch never clears the store, so readers keep seeing the stale catalog
// instead of an empty one.
type Store struct {
	mu          sync.RWMutex
	events      []domain.Event
	refreshedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Replace(events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
	s.refreshedAt = time.Now().UTC()
}

// Snapshot returns the catalog as of the last successful refresh. The
// returned slice is a copy; callers may not mutate store state through it.
func (s *Store) Snapshot() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Event, len(s.events))
	copy(res, s.events)
	return res
}

func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
