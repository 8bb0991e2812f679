// Package publisher records audit events against a Store, optionally through
// an async buffer so slow sinks never block request handling.
package publisher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/requestcontext"
)

// Publisher appends audit events to a store. In sync mode Emit writes
// inline; with an async buffer Emit enqueues and a background goroutine
// drains. Either way Emit is best-effort from the caller's point of view:
// the caller logs a returned error and moves on.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger

	inbox  chan audit.Event
	done   chan struct{}
	closed sync.Once
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to buffered async mode. Events are
// dropped (and logged) when the buffer is full; audit lag must never stall
// the mutation path.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.inbox = make(chan audit.Event, size)
		}
	}
}

// NewPublisher constructs a publisher over the given append-only store.
func NewPublisher(store audit.Store, logger *slog.Logger, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: logger,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		go p.drain()
	}
	return p
}

// Emit records an event, stamping ID and timestamp if unset. The timestamp
// comes from the request-scoped clock so the record matches the request's
// arrival time rather than the (possibly async) write time.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
		return nil
	default:
		p.logger.Warn("audit buffer full, dropping event",
			"action", event.Action,
			"target_id", event.TargetID,
		)
		return nil
	}
}

// Close drains the async buffer and stops the background goroutine.
func (p *Publisher) Close() {
	p.closed.Do(func() {
		if p.inbox == nil {
			close(p.done)
			return
		}
		close(p.inbox)
		<-p.done
	})
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.inbox {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to append audit event",
				"error", err,
				"action", event.Action,
				"target_id", event.TargetID,
			)
		}
	}
}
