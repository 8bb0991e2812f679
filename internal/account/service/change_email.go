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

const (
	msgEmailChanged = "Email address updated."

	// Returned when the credential store accepted the change but the
	// denormalized profile record could not be updated. The authoritative
	// email has changed; directory listings may lag until sync catches up.
	msgEmailChangedSyncLag = "Email address updated. The directory profile may take a moment to reflect the change."
)

// ChangeEmail replaces the target user's email address on behalf of an admin.
// The new address is auto-verified since there is no confirmation round-trip
// for admin overrides. The returned message is the user-visible outcome.
func (s *Service) ChangeEmail(ctx context.Context, targetID id.UserID, newEmail, confirmEmail string) (msg string, err error) {
	ctx, span := s.tracer.Start(ctx, "account.ChangeEmail")
	defer span.End()
	defer func() { s.observeOutcome("email_change", err) }()

	if err = s.authorize(ctx, id.RoleAdmin); err != nil {
		return "", err
	}
	if err = validateEmailChange(newEmail, confirmEmail); err != nil {
		return "", err
	}

	target, err := s.resolveTarget(ctx, targetID)
	if err != nil {
		return "", err
	}

	if err = s.users.UpdateEmail(ctx, target.id, newEmail); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		s.logger.Error("email update failed",
			"error", err,
			"target_id", target.id,
			"request_id", requestcontext.RequestID(ctx),
		)
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not update email")
	}

	// The mutation is applied; everything below is best-effort and must not
	// change the reported outcome.
	msg = msgEmailChanged
	if syncErr := s.profiles.UpdateContactEmail(ctx, target.id, newEmail); syncErr != nil {
		msg = msgEmailChangedSyncLag
		s.logger.Warn("profile email sync failed",
			"error", syncErr,
			"target_id", target.id,
			"request_id", requestcontext.RequestID(ctx),
		)
	}

	s.recordAudit(ctx, audit.EventEmailChanged, target.id, map[string]string{
		"old_email":  target.email,
		"new_email":  newEmail,
		"changed_by": requestcontext.UserEmail(ctx),
	})

	return msg, nil
}
