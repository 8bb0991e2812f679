// Package http assembles the service's HTTP surface: middleware chain,
// public endpoints, and the authenticated admin subtree.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accounthandler "dealerdesk/internal/account/handler"
	mwauth "dealerdesk/pkg/platform/middleware/auth"
	"dealerdesk/pkg/platform/middleware/cors"
	"dealerdesk/pkg/platform/middleware/metadata"
)

// Deps are the wired components the router mounts.
type Deps struct {
	Logger      *slog.Logger
	Account     *accounthandler.Handler
	Validator   mwauth.TokenValidator
	Revocations mwauth.TokenRevocationChecker
	Health      http.HandlerFunc
}

// NewRouter builds the full routing tree. CORS and client metadata run on
// everything; authentication guards only the /admin subtree.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Permissive)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", deps.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(mwauth.RequireAuth(deps.Validator, deps.Revocations, deps.Logger))
		deps.Account.RegisterRoutes(r)
	})

	return r
}
