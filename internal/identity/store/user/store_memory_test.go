package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"dealerdesk/internal/identity/models"
	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) seedUser(email string) id.UserID {
	userID := id.UserID(uuid.New())
	err := s.store.Seed(models.User{
		ID:            userID,
		Email:         email,
		EmailVerified: true,
	}, "Original1password")
	s.Require().NoError(err)
	return userID
}

func (s *MemoryStoreSuite) TestFindByID() {
	userID := s.seedUser("dealer@dealerdesk.test")

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal("dealer@dealerdesk.test", u.Email)
	s.True(u.EmailVerified)
}

func (s *MemoryStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(s.ctx, id.UserID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestFindByEmail_CaseInsensitive() {
	userID := s.seedUser("Dealer@Dealerdesk.Test")

	u, err := s.store.FindByEmail(s.ctx, "dealer@dealerdesk.test")
	s.Require().NoError(err)
	s.Equal(userID, u.ID)
}

func (s *MemoryStoreSuite) TestUpdateEmail_MarksVerified() {
	userID := s.seedUser("old@dealerdesk.test")

	err := s.store.UpdateEmail(s.ctx, userID, "new@dealerdesk.test")
	s.Require().NoError(err)

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal("new@dealerdesk.test", u.Email)
	s.True(u.EmailVerified)
	s.True(u.UpdatedAt.After(u.CreatedAt) || u.UpdatedAt.Equal(u.CreatedAt))
}

func (s *MemoryStoreSuite) TestUpdateEmail_NotFound() {
	err := s.store.UpdateEmail(s.ctx, id.UserID(uuid.New()), "new@dealerdesk.test")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestSetPassword_HashesPlaintext() {
	userID := s.seedUser("dealer@dealerdesk.test")

	err := s.store.SetPassword(s.ctx, userID, "Replacement9pass")
	s.Require().NoError(err)

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.NotEqual("Replacement9pass", u.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Replacement9pass")))
}

func (s *MemoryStoreSuite) TestSetPassword_NotFound() {
	err := s.store.SetPassword(s.ctx, id.UserID(uuid.New()), "Replacement9pass")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestReturnsCopies() {
	userID := s.seedUser("dealer@dealerdesk.test")

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	u.Email = "mutated@dealerdesk.test"

	again, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal("dealer@dealerdesk.test", again.Email)
}
