package service

import (
	"context"
	"errors"

	id "dealerdesk/pkg/domain"
	dErrors "dealerdesk/pkg/domain-errors"
	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/platform/sentinel"
	"dealerdesk/pkg/requestcontext"
)

// ResetPassword sets a new password for the target user on behalf of an
// admin. No current-password check applies; this is a privileged override,
// not a self-service change.
func (s *Service) ResetPassword(ctx context.Context, targetID id.UserID, newPassword string) (err error) {
	ctx, span := s.tracer.Start(ctx, "account.ResetPassword")
	defer span.End()
	defer func() { s.observeOutcome("password_reset", err) }()

	if err = s.authorize(ctx, id.RoleAdmin); err != nil {
		return err
	}
	if err = validatePassword(newPassword); err != nil {
		return err
	}

	target, err := s.resolveTarget(ctx, targetID)
	if err != nil {
		return err
	}

	if err = s.users.SetPassword(ctx, target.id, newPassword); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		s.logger.Error("password reset failed",
			"error", err,
			"target_id", target.id,
			"request_id", requestcontext.RequestID(ctx),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not reset password")
	}

	s.recordAudit(ctx, audit.EventPasswordReset, target.id, map[string]string{
		"changed_by": requestcontext.UserEmail(ctx),
	})

	return nil
}
