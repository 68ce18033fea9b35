package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

const (
	defaultDrainTimeout = 10 * time.Second
	maxHeaderBytes      = 16 << 10
)

// Server runs the site's http.Server for the lifetime of a context.
type Server struct {
	srv    *http.Server
	drain  time.Duration
	logger *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithDrainTimeout bounds how long in-flight requests may finish after the
// run context ends.
func WithDrainTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.drain = d
		}
	}
}

// NewServer builds the server for cfg. A nil logger discards.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  defaultDrainTimeout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then stops accepting connections and
// waits up to the drain timeout for in-flight requests. It returns nil after
// a complete drain.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.InfoContext(ctx, "serving HTTP", slog.String("addr", ln.Addr().String()))

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
	defer cancel()

	s.logger.InfoContext(ctx, "draining HTTP server", slog.Duration("timeout", s.drain))
	err := s.srv.Shutdown(drainCtx)
	<-served
	if err != nil {
		return fmt.Errorf("draining HTTP server: %w", err)
	}
	return nil
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}
