package audit

import (
	"context"
	"log/slog"
)

// Appender is the write half of Store, for secondary sinks (e.g. the Kafka
// mirror) that cannot serve reads.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// TeeStore appends to a primary store and mirrors each event to a secondary
// sink. The primary result is authoritative; mirror failures are logged and
// swallowed so a lagging sink never fails the record.
type TeeStore struct {
	primary Store
	mirror  Appender
	logger  *slog.Logger
}

func NewTeeStore(primary Store, mirror Appender, logger *slog.Logger) *TeeStore {
	return &TeeStore{primary: primary, mirror: mirror, logger: logger}
}

func (t *TeeStore) Append(ctx context.Context, event Event) error {
	err := t.primary.Append(ctx, event)

	if t.mirror != nil {
		if mirrorErr := t.mirror.Append(ctx, event); mirrorErr != nil {
			t.logger.Error("failed to mirror audit event",
				"error", mirrorErr,
				"action", event.Action,
				"target_id", event.TargetID,
			)
		}
	}

	return err
}

func (t *TeeStore) ListByTarget(ctx context.Context, targetType, targetID string) ([]Event, error) {
	return t.primary.ListByTarget(ctx, targetType, targetID)
}

func (t *TeeStore) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	return t.primary.ListRecent(ctx, limit)
}
