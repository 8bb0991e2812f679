// Package httputil centralizes JSON response writing so every handler uses
// the same envelopes: {"success":true,...} on success, {"error":...} on
// failure, with domain error codes mapped to HTTP statuses.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "dealerdesk/pkg/domain-errors"
)

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeInvalidInput: http.StatusBadRequest,
	dErrors.CodeUnauthorized: http.StatusUnauthorized,
	dErrors.CodeForbidden:    http.StatusForbidden,
	dErrors.CodeNotFound:     http.StatusNotFound,
	dErrors.CodeConflict:     http.StatusTooManyRequests,
	dErrors.CodeInternal:     http.StatusInternalServerError,
}

// StatusOf maps a domain error to its HTTP status. Uncoded errors map to 500.
func StatusOf(err error) int {
	if status, ok := statusByCode[dErrors.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the failure envelope. Internal
// causes are replaced with a generic message; the specific diagnostic is the
// caller's responsibility to log.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusOf(err), map[string]string{
		"error": dErrors.MessageOf(err),
	})
}
