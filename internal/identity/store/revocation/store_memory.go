package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory revocation list for tests and local
// development. Expired entries are pruned lazily on lookup.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	if s.now().After(expiry) {
		delete(s.entries, jti)
		return false, nil
	}
	return true, nil
}
