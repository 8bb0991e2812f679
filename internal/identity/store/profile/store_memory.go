package profile

import (
	"context"
	"sync"
	"time"

	"dealerdesk/internal/identity/models"
	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

// MemoryStore is an in-memory profile store for tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID]*models.Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[id.UserID]*models.Profile)}
}

// Seed inserts a profile directly. Test helper.
func (s *MemoryStore) Seed(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = &p
}

// Get returns a copy of the stored profile. Test helper.
func (s *MemoryStore) Get(userID id.UserID) (*models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (s *MemoryStore) UpdateContactEmail(_ context.Context, userID id.UserID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return sentinel.ErrNotFound
	}
	p.ContactEmail = email
	p.UpdatedAt = time.Now()
	return nil
}

// Clear removes all profiles.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[id.UserID]*models.Profile)
}
