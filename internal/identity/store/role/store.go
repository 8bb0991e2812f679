// Package role defines the role-assignment store. Each user carries at most
// one role label; authorization parses the raw label, so an unknown or
// missing label denies rather than errors.
package role

import (
	"context"

	id "dealerdesk/pkg/domain"
)

// Store resolves a user's assigned role label.
//
// FindRole returns the raw stored label. A user with no assignment yields
// sentinel.ErrNotFound.
type Store interface {
	FindRole(ctx context.Context, userID id.UserID) (string, error)
}
