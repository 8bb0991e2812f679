// Package models holds the identity-side entities: the credential record the
// identity store owns, and the denormalized directory profile kept for
// display surfaces.
package models

import (
	"time"

	id "dealerdesk/pkg/domain"
)

// User is the credential record in the identity store.
type User struct {
	ID            id.UserID
	Email         string
	PasswordHash  string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile is the denormalized directory record shown in portal listings.
// Its contact email mirrors User.Email and may lag after an admin override;
// the identity store remains authoritative.
type Profile struct {
	UserID       id.UserID
	DisplayName  string
	ContactEmail string
	UpdatedAt    time.Time
}
