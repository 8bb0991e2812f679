// Package profile defines the directory-profile store. Profiles are a
// denormalized mirror of identity records; writes here are best-effort
// propagation, never authoritative.
package profile

import (
	"context"

	id "dealerdesk/pkg/domain"
)

// Store is the persistence contract for directory profiles.
type Store interface {
	// UpdateContactEmail mirrors an identity email change onto the profile.
	// sentinel.ErrNotFound when the user has no profile record.
	UpdateContactEmail(ctx context.Context, userID id.UserID, email string) error
}
