// Package user defines the credential store contract and its backends.
package user

import (
	"context"

	"dealerdesk/internal/identity/models"
	id "dealerdesk/pkg/domain"
)

// Store is the persistence contract for credential records.
//
// Implementations return sentinel.ErrNotFound when no record matches;
// callers decide how that fact maps onto their own error taxonomy.
type Store interface {
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateEmail replaces the stored address and marks it verified. Admin
	// overrides skip the self-service confirmation loop.
	UpdateEmail(ctx context.Context, userID id.UserID, email string) error

	// SetPassword hashes the plaintext and stores the digest. Plaintext
	// never leaves this call.
	SetPassword(ctx context.Context, userID id.UserID, password string) error
}
