package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/sentinel"
)

// PostgresStore backs the role store with PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) FindRole(ctx context.Context, userID id.UserID) (string, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE user_id = $1`

	var label string
	err := s.pool.QueryRow(ctx, query, userID.String()).Scan(&label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("find role: %w", err)
	}
	return label, nil
}
