// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/backlist/internal/auth"
	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/catalog"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/platform/config"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/middleware"
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

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles admin login and logout.
	Auth *auth.Handler

	// Catalog serves the public read-only catalog and the dashboard counters.
	Catalog *catalog.Handler

	// Admin resources.
	Books      *book.Handler
	Tags       *tag.Handler
	Curators   *curator.Handler
	Affiliates *affiliate.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.AdminVerifier, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, h)

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

// NewRouter builds the routing tree.
//
// # Endpoints
//   - GET  /health, /ready           : Probes
//   - GET  /api/books/..., /api/topics/..., /api/curators/... : Public catalog
//   - POST /api/admin/login, /logout : Session handling
//   - *    /api/admin/{books,tags,curators,affiliates} : Lifecycle routes (admin only)
//   - GET  /api/admin/stats          : Dashboard counters (admin only)
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.AdminVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(context))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/", h.Catalog.PublicRoutes())

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", h.Auth.Login)
			admin.Post("/logout", h.Auth.Logout)

			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAdmin(verifier))

				protected.Get("/stats", h.Catalog.Stats)
				protected.Mount("/books", h.Books.Routes())
				protected.Mount("/tags", h.Tags.Routes())
				protected.Mount("/curators", h.Curators.Routes())
				protected.Mount("/affiliates", h.Affiliates.Routes())
			})
		})
	})

	return r
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
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
