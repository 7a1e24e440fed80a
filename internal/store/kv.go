// Package store is the persistence collaborator: a small key/value contract
// over which the grid's row payload is saved (history is never persisted),
// plus the debounced saver that collapses edit bursts into single writes.
package store

import "sync"

// KV is the persistence contract. Get reports ok=false for an absent key;
// callers treat malformed stored text the same as absent.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryKV is an in-process KV used by tests and `--data :memory:`.
type MemoryKV struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: map[string]string{}}
}

func (s *MemoryKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryKV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
