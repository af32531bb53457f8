// Package dialstatus holds the last dial envelope observed per caller, so
// it can be attached to that caller's eventual hangup event (§4.10).
package dialstatus

import (
	"sync"

	"github.com/webitel/cel-engine/internal/domain/model"
)

// Store is a caller-uniqueid-keyed map guarded by a single mutex. Insert
// and find-and-remove are each atomic; there is no eviction policy beyond
// consumption (orphan entries for callers that never hang up inside this
// process are acceptable leakage per §4.10).
type Store struct {
	mu      sync.Mutex
	entries map[string]*model.DialEnvelope
}

func New() *Store {
	return &Store{entries: make(map[string]*model.DialEnvelope)}
}

// Put inserts or replaces the last-seen dial envelope for a caller.
func (s *Store) Put(callerUniqueID string, env *model.DialEnvelope) {
	if callerUniqueID == "" {
		return
	}
	s.mu.Lock()
	s.entries[callerUniqueID] = env
	s.mu.Unlock()
}

// FindAndRemove atomically looks up and removes the entry for
// callerUniqueID, returning it and whether it was present.
func (s *Store) FindAndRemove(callerUniqueID string) (*model.DialEnvelope, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	env, ok := s.entries[callerUniqueID]
	if ok {
		delete(s.entries, callerUniqueID)
	}
	return env, ok
}

// Len reports the number of orphan-or-pending entries. Exposed for tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
