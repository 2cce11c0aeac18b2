package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/entrelagos/gatelog/internal/common"
)

// MemoryStore is an in-memory Store used by tests and as a scratch backend.
// The mutex only guards the map itself; it does not serialize the
// read-modify-write cycles callers perform, matching the single-operator
// model of the persistent backends.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

// Get returns the document stored under key, or common.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.docs[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, nil
}

// Set rewrites the document stored under key.
func (s *MemoryStore) Set(_ context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.docs[key] = stored
	return nil
}
