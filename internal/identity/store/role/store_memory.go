package role

import (
	"context"
	"sync"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

// MemoryStore is an in-memory role store for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	roles map[id.UserID]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{roles: make(map[id.UserID]string)}
}

// Assign sets a user's role label, replacing any previous assignment.
func (s *MemoryStore) Assign(userID id.UserID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[userID] = label
}

func (s *MemoryStore) FindRole(_ context.Context, userID id.UserID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	label, ok := s.roles[userID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return label, nil
}

// Clear removes all assignments.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles = make(map[id.UserID]string)
}
