package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/audit"
)

// Store implements audit.Store on PostgreSQL. The audit_events table is
// insert-only; nothing in this subsystem updates or deletes rows.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Append inserts an audit event. Idempotent on event ID so retried writes
// never duplicate an entry.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	var ip *string
	if event.IP != "" {
		ip = &event.IP
	}

	query := `
		INSERT INTO audit_events (
			id, category, timestamp, actor_id, actor_email, action,
			target_type, target_id, details, ip, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = s.pool.Exec(ctx, query,
		event.ID,
		string(event.Category),
		event.Timestamp,
		uuid.UUID(event.ActorID),
		event.ActorEmail,
		event.Action,
		event.TargetType,
		event.TargetID,
		details,
		ip,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByTarget returns events for one target entity, most recent first.
func (s *Store) ListByTarget(ctx context.Context, targetType, targetID string) ([]audit.Event, error) {
	query := `
		SELECT id, category, timestamp, actor_id, actor_email, action,
			   target_type, target_id, details, ip, request_id
		FROM audit_events
		WHERE target_type = $1 AND target_id = $2
		ORDER BY timestamp DESC
	`
	rows, err := s.pool.Query(ctx, query, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListRecent returns the N most recent events.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	query := `
		SELECT id, category, timestamp, actor_id, actor_email, action,
			   target_type, target_id, details, ip, request_id
		FROM audit_events
		ORDER BY timestamp DESC
		LIMIT $1
	`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]audit.Event, error) {
	var events []audit.Event

	for rows.Next() {
		var (
			event    audit.Event
			category string
			actorID  uuid.UUID
			details  []byte
			ip       *string
		)

		err := rows.Scan(
			&event.ID,
			&category,
			&event.Timestamp,
			&actorID,
			&event.ActorEmail,
			&event.Action,
			&event.TargetType,
			&event.TargetID,
			&details,
			&ip,
			&event.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}

		event.Category = audit.EventCategory(category)
		event.ActorID = id.UserID(actorID)
		if ip != nil {
			event.IP = *ip
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &event.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
