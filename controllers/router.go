package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/middleware"
)

// RouterOptions configures the HTTP surface
type RouterOptions struct {
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
	SecureCookies   bool
	SessionLifetime int64 // seconds
}

// NewRouter configures all routes
func NewRouter(ctrl *Controllers, opts RouterOptions) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer(opts.Logger))
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "useradmin_session",
		Secure:         opts.SecureCookies,
		Gclifetime:     opts.SessionLifetime,
		Maxlifetime:    opts.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(middleware.Actor)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "useradmin"}`)
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	// User management routes
	r.Route("/users", func(r chi.Router) {
		r.Get("/", ctrl.Users.Index)
		r.Post("/", ctrl.Users.Create)
		r.Get("/new", ctrl.Users.New)
		r.Get("/{id}", ctrl.Users.Show)
		r.Post("/{id}", ctrl.Users.Update)
		r.Get("/{id}/edit", ctrl.Users.Edit)
		r.Get("/{id}/delete", ctrl.Users.ConfirmDelete)
		r.Post("/{id}/delete", ctrl.Users.Delete)
	})

	// Audit log routes
	r.Route("/logs", func(r chi.Router) {
		r.Get("/", ctrl.Logs.Index)
		r.Get("/{id}", ctrl.Logs.Show)
	})

	return r, nil
}
