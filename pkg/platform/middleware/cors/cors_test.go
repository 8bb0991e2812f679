package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPermissive(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("preflight terminates with 204", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Permissive(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/admin/users/email", nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204 for preflight, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("expected permissive allow-origin header")
		}
	})

	t.Run("non-preflight passes through with headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Permissive(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/users/email", nil))

		if rec.Code != http.StatusTeapot {
			t.Fatalf("expected wrapped handler to run, got %d", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Headers") == "" {
			t.Fatalf("expected CORS headers on normal responses too")
		}
	})
}
