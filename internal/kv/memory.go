package kv

import "sync"

// MemoryStore is a map-backed Store for tests and ephemeral sessions.
// Safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	writes   int
	writeErr error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store. When a write error is configured the value is not
// stored and the error is returned.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[key] = value
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }

// FailWrites makes every subsequent Set return err. Pass nil to restore.
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Writes returns the number of Set calls, failed ones included.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
