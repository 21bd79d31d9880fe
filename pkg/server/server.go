// Package server exposes the graph code converters over HTTP.
//
// # Endpoints
//
//	GET  /healthz                  liveness probe
//	GET  /version                  build information
//	GET  /v1/formats               supported formats and their headers
//	POST /v1/encode/{format}       adjacency text → graph code stream
//	POST /v1/decode                graph code stream → adjacency text
//	POST /v1/render                one graph of a stream → SVG or DOT
//
// Encode accepts the query parameters zero_based and strict; decode accepts
// zero_based and format (detected from the header when absent); render
// accepts graph (1-based, default 1), output (svg or dot), engine and
// zero_based.
//
// Encode and decode results are memoized in the runner's cache; the
// X-Cache response header reports "hit" or "miss".
//
// # Errors
//
// Failures are answered with a JSON body:
//
//	{"code": "PARSE_ERROR", "message": "...", "request_id": "..."}
//
// Malformed input maps to 422, unknown formats and bad parameters to 400,
// oversized bodies to 413 and everything else to 500.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// Defaults
const (
	DefaultAddr            = ":8080"
	DefaultMaxBodyBytes    = 64 << 20
	DefaultShutdownTimeout = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr            string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Server serves the HTTP API on top of a pipeline.Runner.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil logger uses the default logger.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	cfg.setDefaults()
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.handleFormats)
		r.Post("/encode/{format}", s.handleEncode)
		r.Post("/decode", s.handleDecode)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled. In-flight requests get
// ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(errors.ErrCodeInternal, err, "serve")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	s.logger.Debug("server stopped")
	return nil
}
