// Package server exposes the git adapter as JSON over HTTP for the web
// front end. Every route forwards the adapter's envelope unchanged; only
// malformed requests are answered with an error of the server's own.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gorewood/simplegit/internal/git"
)

// shutdownGrace bounds how long in-flight requests may run after the
// listen context ends.
const shutdownGrace = 10 * time.Second

// routePrefix is the path segment every adapter route lives under.
const routePrefix = "simple_git/"

// Server is an http.Handler serving one repository.
type Server struct {
	repo    *git.Repo
	logger  *log.Logger
	baseURL string
	timeout time.Duration
	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBaseURL mounts every route under base, e.g. "/user/ada/".
func WithBaseURL(base string) Option {
	return func(s *Server) {
		s.baseURL = normalizeBase(base)
	}
}

// WithRequestTimeout bounds each request, including the git process it
// starts. Zero disables the limit.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// New builds a Server for repo.
func New(repo *git.Repo, opts ...Option) *Server {
	s := &Server{
		repo:    repo,
		logger:  log.New(io.Discard),
		baseURL: "/",
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	s.routes(mux)
	s.handler = chain(mux,
		requestID,
		s.logRequests,
		s.recoverPanics,
		s.withTimeout,
	)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// BaseURL returns the normalized mount point.
func (s *Server) BaseURL() string {
	return s.baseURL
}

// ListenAndServe serves on addr until ctx is done, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	// Requests outlive ctx so Shutdown can drain them.
	base := context.WithoutCancel(ctx)
	httpServer := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", listener.Addr().String(), "root", s.repo.Root(), "base_url", s.baseURL)
		errCh <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// normalizeBase makes base start and end with a slash.
func normalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}
