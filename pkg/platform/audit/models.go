// Package audit defines the append-only record of privileged actions:
// who did what to whom, when, and from where. Events are transport-agnostic
// so stores and sinks can fan out.
package audit

import (
	"time"

	"github.com/google/uuid"

	id "dealerdesk/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose. This
// drives retention policy and downstream routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These require tamper-proof storage and long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring and
	// forensics; these feed SIEM pipelines.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine operational visibility events.
	CategoryOperations EventCategory = "operations"
)

// Event is one immutable audit entry. Once appended it is never mutated or
// deleted by this subsystem.
type Event struct {
	ID        uuid.UUID
	Category  EventCategory
	Timestamp time.Time

	// ActorID/ActorEmail identify who performed the action. The email is
	// denormalized at write time so the record stays attributable even if
	// the actor's account changes later.
	ActorID    id.UserID
	ActorEmail string

	Action string

	// TargetType/TargetID identify the entity acted upon ("user" for
	// credential mutations).
	TargetType string
	TargetID   string

	// Details carries action-specific payload, e.g. old/new email and a
	// human-readable changed_by field.
	Details map[string]string

	// IP is the best-effort origin network address; empty means unknown.
	IP string

	RequestID string
}

// AuditEvent names the privileged actions this service records.
type AuditEvent string

const (
	EventEmailChanged  AuditEvent = "email_changed"
	EventPasswordReset AuditEvent = "password_reset"
)

var eventCategories = map[AuditEvent]EventCategory{
	// Identity data changes carry regulatory weight.
	EventEmailChanged: CategoryCompliance,
	// Credential overrides feed security monitoring.
	EventPasswordReset: CategorySecurity,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
