// Package cors implements the permissive cross-origin policy the admin
// portal frontend relies on: every origin may call the API, and OPTIONS
// preflight probes are answered without touching handlers.
package cors

import "net/http"

// Permissive sets permissive cross-origin headers and terminates preflight
// requests with 204. It carries no credentials semantics; authentication is
// the bearer token's job.
func Permissive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		h.Set("Access-Control-Max-Age", "600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
