// Package handler exposes the privileged account-mutation endpoints. It owns
// transport concerns only: decoding, the duplicate-submission guard, and the
// response envelopes. All pipeline rules live in the service.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealerdesk/internal/platform/metrics"
	id "dealerdesk/pkg/domain"
	dErrors "dealerdesk/pkg/domain-errors"
	"dealerdesk/pkg/platform/debounce"
	"dealerdesk/pkg/platform/httputil"
	"dealerdesk/pkg/requestcontext"
)

// AccountService is the pipeline contract the handler dispatches into.
type AccountService interface {
	ChangeEmail(ctx context.Context, targetID id.UserID, newEmail, confirmEmail string) (string, error)
	ResetPassword(ctx context.Context, targetID id.UserID, newPassword string) error
}

// Handler serves the admin credential-mutation endpoints. Each endpoint has
// its own debounce guard so rapid re-submission of one form never interferes
// with the other.
type Handler struct {
	service AccountService
	logger  *slog.Logger
	metrics *metrics.Metrics

	emailGuard    *debounce.Guard
	passwordGuard *debounce.Guard
}

func NewHandler(service AccountService, logger *slog.Logger, m *metrics.Metrics, guardOpts ...debounce.Option) *Handler {
	return &Handler{
		service:       service,
		logger:        logger,
		metrics:       m,
		emailGuard:    debounce.New(guardOpts...),
		passwordGuard: debounce.New(guardOpts...),
	}
}

// RegisterRoutes mounts the mutation endpoints; callers wrap them in the
// authentication middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/users/email", h.changeEmail)
	r.Post("/users/password", h.resetPassword)
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	var req changeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	targetID, err := id.ParseUserID(req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	key := submissionKey(r.Context(), "email_change", targetID, req.NewEmail)
	if h.emailGuard.ShouldSuppress(key) {
		h.metrics.ObserveSuppressed("email_change")
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "duplicate submission, please wait before retrying"))
		return
	}
	h.emailGuard.RecordAttempt(key)

	msg, err := h.service.ChangeEmail(r.Context(), targetID, req.NewEmail, req.ConfirmEmail)
	if err != nil {
		h.logFailure(r.Context(), "email_change", targetID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, successResponse{Success: true, Message: msg})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	targetID, err := id.ParseUserID(req.UserID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	// The password itself never enters the guard key; the action and target
	// are discriminating enough for a single-instance dialog.
	key := submissionKey(r.Context(), "password_reset", targetID, "")
	if h.passwordGuard.ShouldSuppress(key) {
		h.metrics.ObserveSuppressed("password_reset")
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "duplicate submission, please wait before retrying"))
		return
	}
	h.passwordGuard.RecordAttempt(key)

	if err := h.service.ResetPassword(r.Context(), targetID, req.NewPassword); err != nil {
		h.logFailure(r.Context(), "password_reset", targetID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, successResponse{Success: true})
}

func submissionKey(ctx context.Context, action string, target id.UserID, value string) string {
	return fmt.Sprintf("%s|%s|%s|%s", requestcontext.UserID(ctx), action, target, value)
}

func (h *Handler) logFailure(ctx context.Context, action string, target id.UserID, err error) {
	h.logger.Warn("privileged action rejected",
		"action", action,
		"target_id", target,
		"code", dErrors.CodeOf(err),
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}
