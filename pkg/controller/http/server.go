package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgshift/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	migration *MigrationHandler
}

type serverConfig struct {
	adminSecret []byte
}

// ServerOption is a functional option for configuring Server
type ServerOption func(*serverConfig)

// WithAdminSecret requires admin routes to carry a bearer JWT signed with
// secret (HS256). Without it the admin routes are open.
func WithAdminSecret(secret []byte) ServerOption {
	return func(c *serverConfig) {
		c.adminSecret = secret
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, migrationUC interfaces.Migration, opts ...ServerOption) *Server {
	var cfg serverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.adminSecret) == 0 {
		ctxlog.From(ctx).Warn("Admin JWT secret is not set, admin endpoints are not authenticated")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	migrationHandler := NewMigrationHandler(migrationUC)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(RequireAdmin(cfg.adminSecret))

		r.Route("/org-migration", func(r chi.Router) {
			r.Get("/", migrationHandler.HandleRun)
			r.Post("/", migrationHandler.HandleDispatch)
			r.Post("/resume", migrationHandler.HandleResume)
			r.Get("/progress", migrationHandler.HandleProgress)
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		migration: migrationHandler,
	}
}

// WaitRuns blocks until the runs started by POST /api/admin/org-migration have
// finished. Call it after Shutdown, which does not wait for them.
func (s *Server) WaitRuns(ctx context.Context) error {
	return s.migration.Wait(ctx)
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "orgshift",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
