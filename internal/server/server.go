// Package server serves the pack designer over HTTP.
//
// The server is a thin layer over [pipeline.Runner]: every request is
// translated into pipeline options, executed against the shared cache and
// written back as HTML, SVG or JSON.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cellstack/pkg/config"
	"github.com/matzehuels/cellstack/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Server handles designer requests.
type Server struct {
	runner   *pipeline.Runner
	settings config.Settings
	logger   *log.Logger
	router   chi.Router
}

// New creates a server. The runner's catalog is replaced with the one from
// settings so custom profiles are served.
func New(runner *pipeline.Runner, settings config.Settings, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	runner.Catalog = settings.Catalog
	s := &Server{
		runner:   runner,
		settings: settings,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cells", s.handleCells)
		r.Get("/pack", s.handlePack)
		r.Get("/pack.svg", s.handlePackSVG)
		r.Get("/schematic.svg", s.handleSchematicSVG)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
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
	}

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
