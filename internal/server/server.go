// Package server exposes the canvas layout engine over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness probe
//	POST /v1/layout   add nodes and connect edges on a canvas, return the result
//	POST /v1/route    choose edge sides for two rectangles
//
// Errors are JSON objects {"code": ..., "message": ...}. Validation errors
// map to 400, invariant violations to 422 and everything else to 500.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/jsoncanvas/pkg/cache"
	"github.com/matzehuels/jsoncanvas/pkg/canvas"
)

const (
	maxBodyBytes    = 8 << 20
	shutdownTimeout = 10 * time.Second
)

// Server handles layout requests. It holds no document state between
// requests; every request builds its own canvas.
type Server struct {
	cfg     canvas.Config
	layouts *cache.Layouts
	logger  *log.Logger
	router  chi.Router
}

// New creates a server. A nil layouts store disables result caching and a
// nil logger discards output.
func New(cfg canvas.Config, layouts *cache.Layouts, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if layouts == nil {
		layouts = cache.NewLayouts(cache.NewNullCache(), nil, 0)
	}
	s := &Server{cfg: cfg, layouts: layouts, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(hooks)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/layout", s.layout)
		r.Post("/route", s.route)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
