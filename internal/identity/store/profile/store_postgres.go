package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

// PostgresStore backs the profile store with PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) UpdateContactEmail(ctx context.Context, userID id.UserID, email string) error {
	query := `
		UPDATE profiles
		SET contact_email = $2, updated_at = now()
		WHERE user_id = $1`

	tag, err := s.pool.Exec(ctx, query, userID.String(), email)
	if err != nil {
		return fmt.Errorf("update contact email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
