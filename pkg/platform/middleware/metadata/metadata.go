package metadata

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mssola/useragent"

	"dealerdesk/pkg/requestcontext"
)

// ClientMetadata extracts the client IP address, User-Agent, and a short
// device summary from the request and adds them to the context for audit
// enrichment, and pins the request arrival time so everything recorded for
// one request carries the same timestamp. Apply early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		ua := r.Header.Get("User-Agent")

		ctx := r.Context()
		ctx = requestcontext.WithClientMetadata(ctx, ip, ua, deviceSummary(ua))
		ctx = requestcontext.WithRequestID(ctx, middleware.GetReqID(ctx))
		ctx = requestcontext.WithTime(ctx, time.Now())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// deviceSummary condenses a User-Agent header into "Browser x.y (OS)" for
// human-readable audit details. Empty input yields empty output.
func deviceSummary(ua string) string {
	if ua == "" {
		return ""
	}
	parsed := useragent.New(ua)
	name, version := parsed.Browser()
	if name == "" {
		return ""
	}
	summary := name
	if version != "" {
		summary += " " + version
	}
	if os := parsed.OS(); os != "" {
		summary += " (" + os + ")"
	}
	return summary
}

// ClientIPFromRequest extracts the real client IP from the request, handling
// proxies and load balancers. Best-effort: returns "" when nothing usable is
// present, so audit records store a null origin rather than a guess.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
	// the first is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" (IPv4) or "[::1]:port" (IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}

	return ""
}
