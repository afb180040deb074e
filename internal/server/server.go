// Package server implements the HTTP front end for codia.
//
// The server accepts pasted or uploaded Go source, analyzes it into a
// class model, renders a diagram, and returns the artifact. Rendered
// bytes are cached by source hash so repeated submissions of the same
// code are served without re-rendering.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codia/codia/pkg/cache"
	"github.com/codia/codia/pkg/pipeline"
)

// artifactTTL bounds how long rendered diagrams stay retrievable by ID.
const artifactTTL = 24 * time.Hour

// Server handles HTTP requests for diagram generation.
type Server struct {
	cache  cache.Cache
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a Server backed by the given artifact cache.
func New(c cache.Cache, logger *log.Logger) *Server {
	s := &Server{
		cache:  c,
		runner: pipeline.NewRunner(c, logger),
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/diagrams", s.handleCreateDiagram)
		r.Get("/diagrams/{id}", s.handleGetDiagram)
	})
	return r
}

// logRequests logs each request with method, path, status, and latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
