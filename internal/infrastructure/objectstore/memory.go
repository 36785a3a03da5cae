package objectstore

import (
	"context"
	"sync"
)

// MemoryStore keeps document bytes in process memory. Used when no bucket is
// configured (demo mode) and by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)
	s.objects[key] = stored
	return "memory://" + key, nil
}

// Get is used by tests to verify stored bytes.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.objects[key]
	return body, ok
}
