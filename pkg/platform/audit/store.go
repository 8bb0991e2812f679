package audit

import "context"

// Store is an append-only sink for audit events. Implementations must never
// update or delete appended events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByTarget(ctx context.Context, targetType, targetID string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
