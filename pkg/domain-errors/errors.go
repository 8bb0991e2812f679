// Package dErrors defines coded domain errors shared by services and
// transports. Services create or wrap errors with a Code; the HTTP layer
// translates codes to statuses without inspecting error strings.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and retry semantics.
type Code string

const (
	// CodeInvalidInput marks validation failures. No side effect happened;
	// safe to retry after correcting the input.
	CodeInvalidInput Code = "invalid_input"

	// CodeUnauthorized marks requests without a resolvable caller identity.
	CodeUnauthorized Code = "unauthorized"

	// CodeForbidden marks authenticated callers whose role does not permit
	// the action. Terminal for that caller.
	CodeForbidden Code = "forbidden"

	// CodeNotFound marks operations against entities that do not exist.
	CodeNotFound Code = "not_found"

	// CodeConflict marks duplicate or out-of-order submissions.
	CodeConflict Code = "conflict"

	// CodeInternal marks infrastructure failures. The wrapped cause is for
	// logs only and must never reach the caller verbatim.
	CodeInternal Code = "internal"
)

// Error is a domain error with a stable code and a user-presentable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause. The cause stays
// reachable via errors.Is/As for logging but the message is what callers see.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// uncoded errors so unknown failures stay opaque to callers.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-presentable message from err. Uncoded errors
// yield a generic message; their detail belongs in logs, not responses.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Code != CodeInternal {
		return de.Message
	}
	return "internal error"
}
