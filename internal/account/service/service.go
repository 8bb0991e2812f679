// Package service implements the privileged account-mutation pipeline:
// authorization gate, input validation, the mutation itself, and best-effort
// audit recording. Handlers stay thin; every rule lives here.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"dealerdesk/internal/identity/store/profile"
	"dealerdesk/internal/identity/store/role"
	"dealerdesk/internal/identity/store/user"
	"dealerdesk/internal/platform/metrics"
	id "dealerdesk/pkg/domain"
	dErrors "dealerdesk/pkg/domain-errors"
	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/platform/sentinel"
	"dealerdesk/pkg/requestcontext"
)

// AuditEmitter records audit events. Emit is best-effort from this service's
// point of view; failures are logged and counted, never surfaced.
type AuditEmitter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates privileged mutations against the identity store.
type Service struct {
	users    user.Store
	roles    role.Store
	profiles profile.Store
	audit    AuditEmitter
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

func NewService(
	users user.Store,
	roles role.Store,
	profiles profile.Store,
	auditEmitter AuditEmitter,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		users:    users,
		roles:    roles,
		profiles: profiles,
		audit:    auditEmitter,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("dealerdesk/account"),
	}
}

// authorize checks that the calling user currently holds exactly the required
// role. The role is re-read on every call; a missing or unknown role label
// denies. Denials are not audited.
func (s *Service) authorize(ctx context.Context, required id.Role) error {
	actorID := requestcontext.UserID(ctx)
	if actorID.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	label, err := s.roles.FindRole(ctx, actorID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeForbidden, "admin role required")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "role lookup failed")
	}

	actorRole, ok := id.ParseRole(label)
	if !ok || actorRole != required {
		return dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	return nil
}

// resolveTarget loads the target credential record. An unresolvable target is
// CodeNotFound, kept distinct from validation failures so the caller can tell
// a bad id apart from a bad payload.
func (s *Service) resolveTarget(ctx context.Context, targetID id.UserID) (*targetUser, error) {
	u, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "user lookup failed")
	}
	return &targetUser{id: u.ID, email: u.Email}, nil
}

type targetUser struct {
	id    id.UserID
	email string
}

// recordAudit writes one audit entry, swallowing failure. The mutation has
// already been applied when this runs; an audit outage must not turn an
// applied mutation into a reported failure. Client metadata captured by the
// middleware (origin IP, device summary) is folded in here so every record
// says where the action came from.
func (s *Service) recordAudit(ctx context.Context, action audit.AuditEvent, target id.UserID, details map[string]string) {
	if device := requestcontext.Device(ctx); device != "" {
		details["device"] = device
	}

	event := audit.Event{
		ActorID:    requestcontext.UserID(ctx),
		ActorEmail: requestcontext.UserEmail(ctx),
		Action:     string(action),
		TargetType: "user",
		TargetID:   target.String(),
		Details:    details,
		IP:         requestcontext.ClientIP(ctx),
		RequestID:  requestcontext.RequestID(ctx),
	}

	if err := s.audit.Emit(ctx, event); err != nil {
		s.metrics.ObserveAuditFailure()
		s.logger.Error("audit write failed",
			"error", err,
			"action", event.Action,
			"target_id", event.TargetID,
			"request_id", event.RequestID,
		)
	}
}

func (s *Service) observeOutcome(action string, err error) {
	if err == nil {
		s.metrics.ObserveAction(action, "success")
		return
	}
	s.metrics.ObserveAction(action, string(dErrors.CodeOf(err)))
}
