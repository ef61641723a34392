// Package server exposes the project store over a small JSON REST API so a
// shared team database can sit behind one daemon while workstations run the
// CLI against it.
package server

import (
	"log/slog"
	"net/http"
	"time"
)

// Server wires the HTTP handlers onto a mux.
type Server struct {
	projects *ProjectHandler
	logger   *slog.Logger
}

func New(projects *ProjectHandler, logger *slog.Logger) *Server {
	return &Server{projects: projects, logger: logger}
}

// Handler returns the routed handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/projects", s.projects.List)
	mux.HandleFunc("POST /api/projects", s.projects.Create)
	mux.HandleFunc("GET /api/projects/{id}", s.projects.Get)
	mux.HandleFunc("PUT /api/projects/{id}", s.projects.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", s.projects.Delete)
	mux.HandleFunc("GET /api/projects/{id}/changes", s.projects.ListChanges)

	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
