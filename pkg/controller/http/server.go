package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issuereport/frontend"
	"github.com/secmon-lab/issuereport/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server serving the dashboard API and the
// embedded dashboard page
func NewServer(ctx context.Context, addr string, dashboardUC interfaces.Dashboard) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewDashboardHandler(dashboardUC)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/catalog", handler.HandleCatalog)
		r.Get("/options", handler.HandleOptions)
		r.Get("/view", handler.HandleView)
	})

	dist, err := frontend.Dist()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
	} else {
		spa, err := NewSPAHandler(dist)
		if err != nil {
			return nil, err
		}
		ctxlog.From(ctx).Info("Serving frontend from embedded files")
		router.Handle("/*", spa)
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "issuereport",
	})
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Issue Report</title></head>
<body>
    <h1>Issue Report</h1>
    <p>The dashboard page is not built. The JSON API is available under <a href="/api/view">/api/view</a>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": err.Error(),
	})
}
