// Package server exposes stored graphs over HTTP.
//
// The API is a thin layer over a [store.Store]: upload an edge-list document,
// then fetch it back as JSON, DOT text, a rendered SVG, or a traversal.
// Rendered SVGs are cached by content hash so re-rendering an unchanged
// graph is a cache read.
//
// # Routes
//
//	GET    /healthz                      liveness probe
//	GET    /graphs                       list stored graph IDs
//	POST   /graphs                       store a graphio JSON document
//	GET    /graphs/{id}                  fetch the stored record
//	DELETE /graphs/{id}                  remove the record
//	GET    /graphs/{id}/dot              DOT text of the compiled graph
//	GET    /graphs/{id}/svg              rendered SVG
//	GET    /graphs/{id}/traversal        ?order=dfs|bfs|topo&start=N
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/trellisgraph/trellis/pkg/cache"
	"github.com/trellisgraph/trellis/pkg/store"
)

// Server routes graph API requests to a store and an artifact cache.
type Server struct {
	store   store.Store
	cache   cache.Cache
	logger  *log.Logger
	handler http.Handler
}

// New assembles the router. A nil logger falls back to log.Default; a nil
// cache disables SVG caching via [cache.NullCache].
func New(st store.Store, c cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	s := &Server{store: st, cache: c, logger: logger}

	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Route("/graphs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Get("/dot", s.handleDOT)
			r.Get("/svg", s.handleSVG)
			r.Get("/traversal", s.handleTraversal)
		})
	})
	s.handler = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// logRequests logs method, path, and duration at info level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
