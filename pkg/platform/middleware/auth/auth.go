package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/requestcontext"
)

// TokenValidator resolves a bearer credential to claims about the caller.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// TokenRevocationChecker reports whether a token has been revoked since issue.
type TokenRevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims are the facts the middleware needs from a validated token.
type Claims struct {
	UserID id.UserID
	Email  string
	JTI    string
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}

// RequireAuth resolves the bearer credential on every request. Absent,
// malformed, expired, or revoked credentials short-circuit with 401; on
// success the caller identity lands in the context for handlers and
// services. Roles are deliberately NOT resolved here - they are looked up
// fresh by the authorization gate so role changes take effect immediately.
func RequireAuth(validator TokenValidator, revocations TokenRevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.JTI)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						"error", err,
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusInternalServerError, "internal error")
					return
				}
				if revoked {
					logger.WarnContext(ctx, "unauthorized access - token revoked",
						"jti", claims.JTI,
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
			}

			ctx = requestcontext.WithUserID(ctx, claims.UserID)
			ctx = requestcontext.WithUserEmail(ctx, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
