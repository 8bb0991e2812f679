// Package domain holds the typed identifiers and closed enumerations shared
// across the service. Typed IDs prevent cross-type assignment at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "dealerdesk/pkg/domain-errors"
)

// UserID identifies a portal user (caller or mutation target).
type UserID uuid.UUID

// ParseUserID parses and validates a user ID from external input.
// Empty, malformed, and nil UUIDs are rejected at the trust boundary.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user ID required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid user ID")
	}
	if parsed == uuid.Nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid user ID")
	}
	return UserID(parsed), nil
}

// IsNil reports whether the ID is the zero UUID.
func (id UserID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string { return uuid.UUID(id).String() }
