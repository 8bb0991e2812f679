package testutil

import (
	"net/http"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/requestcontext"
)

// WithActor injects an authenticated caller into the request context,
// simulating what the auth middleware does. Invalid IDs are silently ignored
// so tests can also exercise the unauthenticated path.
func WithActor(req *http.Request, userID, email string) *http.Request {
	ctx := req.Context()
	if parsed, err := id.ParseUserID(userID); err == nil {
		ctx = requestcontext.WithUserID(ctx, parsed)
	}
	if email != "" {
		ctx = requestcontext.WithUserEmail(ctx, email)
	}
	return req.WithContext(ctx)
}
