// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and the page
handlers into a runnable [http.Server].

Architecture:

  - This package is the composition root for the HTTP transport (chi router).
  - HTML pages are mounted at the root; their JSON counterparts under /api/v1.
  - Only this package and cmd/web import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/eliezyer/ember-osf-preprints/internal/core/content"
	"github.com/eliezyer/ember-osf-preprints/internal/core/discover"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/config"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/constants"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/i18n"
	"github.com/eliezyer/ember-osf-preprints/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups the page handler sets.
type Handlers struct {
	// Liveness is the /health handler: always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler: 200 when every configured dependency answers.
	Readiness http.HandlerFunc

	// Discover serves the discovery page and its configuration endpoint.
	Discover *discover.Handler

	// Content serves the preprint detail page and its head-tag endpoint.
	Content *content.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, catalog *i18n.Catalog, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.Locale(catalog))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Pages
	h.Discover.RegisterRoutes(r)
	h.Content.RegisterRoutes(r)

	// # JSON Endpoints
	r.Route("/api/v1", func(api chi.Router) {
		h.Discover.RegisterAPIRoutes(api)
		h.Content.RegisterAPIRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
