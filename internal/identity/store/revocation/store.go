// Package revocation tracks revoked token IDs so sessions can be killed
// before their JWTs expire.
package revocation

import (
	"context"
	"time"
)

// Store is the token revocation list contract. Entries expire with the
// token they shadow; lookups after expiry report not revoked.
type Store interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
