package store

import (
	"context" // Context kept for interface parity
	"sync"    // Guards the scope map
)

// MemoryBackend keeps every scope in process memory. State is lost on restart.
type MemoryBackend struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{scopes: make(map[string]map[string]string)}
}

// For returns the Store for the given scope
func (b *MemoryBackend) For(scope string) Store {
	return &memoryStore{backend: b, scope: scope}
}

// Ping always succeeds
func (b *MemoryBackend) Ping(context.Context) error {
	return nil
}

// NewMemoryStore returns a standalone Store, handy for tests
func NewMemoryStore() Store {
	return NewMemoryBackend().For("default")
}

type memoryStore struct {
	backend *MemoryBackend
	scope   string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()
	v, ok := s.backend.scopes[s.scope][key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	m, ok := s.backend.scopes[s.scope]
	if !ok {
		m = make(map[string]string)
		s.backend.scopes[s.scope] = m
	}
	m[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	m, ok := s.backend.scopes[s.scope]
	if !ok {
		return nil
	}
	delete(m, key)
	if len(m) == 0 {
		delete(s.backend.scopes, s.scope) // Drop empty scopes so logout leaves nothing behind
	}
	return nil
}
