package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"dealerdesk/internal/identity/models"
	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

// PostgresStore backs the credential store with PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, email_verified, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.pool.QueryRow(ctx, query, userID.String()))
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, email_verified, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)`

	return s.scanUser(s.pool.QueryRow(ctx, query, email))
}

func (s *PostgresStore) UpdateEmail(ctx context.Context, userID id.UserID, email string) error {
	query := `
		UPDATE users
		SET email = $2, email_verified = TRUE, updated_at = now()
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, userID.String(), email)
	if err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SetPassword(ctx context.Context, userID id.UserID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	query := `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, userID.String(), string(hash))
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) scanUser(row pgx.Row) (*models.User, error) {
	var (
		u     models.User
		rawID string
	)
	err := row.Scan(&rawID, &u.Email, &u.PasswordHash, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	parsed, err := id.ParseUserID(rawID)
	if err != nil {
		return nil, fmt.Errorf("stored user id: %w", err)
	}
	u.ID = parsed
	return &u, nil
}
