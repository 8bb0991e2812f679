//go:build integration

package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
	"dealerdesk/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	pool := containers.SetupPostgres(t)
	s := &PostgresStoreSuite{pool: pool, store: NewPostgresStore(pool), ctx: context.Background()}
	suite.Run(t, s)
}

func (s *PostgresStoreSuite) insertUser(email string) id.UserID {
	userID := id.UserID(uuid.New())
	_, err := s.pool.Exec(s.ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		userID.String(), email, "placeholder-hash",
	)
	s.Require().NoError(err)
	return userID
}

func (s *PostgresStoreSuite) TestFindByID() {
	userID := s.insertUser(uuid.NewString() + "@dealerdesk.test")

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(userID, u.ID)
	s.False(u.EmailVerified)
}

func (s *PostgresStoreSuite) TestFindByID_NotFound() {
	_, err := s.store.FindByID(s.ctx, id.UserID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindByEmail_CaseInsensitive() {
	local := uuid.NewString()
	userID := s.insertUser(local + "@Dealerdesk.Test")

	u, err := s.store.FindByEmail(s.ctx, local+"@dealerdesk.test")
	s.Require().NoError(err)
	s.Equal(userID, u.ID)
}

func (s *PostgresStoreSuite) TestUpdateEmail_MarksVerified() {
	userID := s.insertUser(uuid.NewString() + "@dealerdesk.test")
	newEmail := uuid.NewString() + "@dealerdesk.test"

	s.Require().NoError(s.store.UpdateEmail(s.ctx, userID, newEmail))

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(newEmail, u.Email)
	s.True(u.EmailVerified)
}

func (s *PostgresStoreSuite) TestUpdateEmail_NotFound() {
	err := s.store.UpdateEmail(s.ctx, id.UserID(uuid.New()), "ghost@dealerdesk.test")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSetPassword_StoresHash() {
	userID := s.insertUser(uuid.NewString() + "@dealerdesk.test")

	s.Require().NoError(s.store.SetPassword(s.ctx, userID, "Replacement9pass"))

	u, err := s.store.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	s.NotEqual("Replacement9pass", u.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Replacement9pass")))
}
