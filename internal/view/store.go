package view

import (
	"sync"
	"time"

	"github.com/butcherynv/posdesk/internal/domain/model"
)

// Snapshot holds the latest upstream response for one resource. Refreshes
// follow a latest-initiated-wins rule: every fetch first claims a sequence
// number with Begin, and Apply discards any response whose sequence is older
// than the newest claimed one. Slow responses from superseded requests can
// therefore never overwrite fresher data.
type Snapshot[T any] struct {
	mu        sync.RWMutex
	latestReq uint64
	data      []T
	fetchedAt time.Time
	loaded    bool
}

// Begin claims a sequence number for a refresh about to start.
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestReq++
	return s.latestReq
}

// Apply installs a response fetched under req. It reports false, leaving the
// snapshot untouched, when a newer refresh has been initiated since.
func (s *Snapshot[T]) Apply(req uint64, data []T, fetchedAt time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req < s.latestReq {
		return false
	}
	s.data = data
	s.fetchedAt = fetchedAt
	s.loaded = true
	return true
}

// Get returns the last applied response and whether any response has been
// applied yet.
func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.loaded
}

// FetchedAt reports when the current data was applied.
func (s *Snapshot[T]) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Store aggregates the per-resource snapshots the pages render from. The
// displayed state is always a full upstream response, never a speculative
// local merge.
type Store struct {
	Orders  Snapshot[model.Order]
	Items   Snapshot[model.Item]
	Waiters Snapshot[model.Waiter]
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}
