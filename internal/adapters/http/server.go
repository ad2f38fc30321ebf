package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server owns the listener and the http.Server of the public API.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
	ready  chan struct{}
	addr   net.Addr
}

// NewServer applies the configured timeouts to handler. net/http's own error
// log is routed into logger at warn level.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the listener and serves until Shutdown, which makes it return
// nil. Bind failures release ListenAddr waiters.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		close(s.ready)
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	s.addr = ln.Addr()
	close(s.ready)

	s.logger.Info("http server listening", slog.String("addr", s.addr.String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", s.addr, err)
	}
	return nil
}

// ListenAddr blocks until Start has bound its listener and returns the bound
// address, which differs from Addr when the configured port is 0. Returns nil
// if binding failed or ctx ends first.
func (s *Server) ListenAddr(ctx context.Context) net.Addr {
	select {
	case <-s.ready:
		return s.addr
	case <-ctx.Done():
		return nil
	}
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx ends. A ctx without deadline gets defaultShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("http server draining")
	return s.srv.Shutdown(ctx)
}

// Addr is the configured address, possibly with port 0.
func (s *Server) Addr() string {
	return s.srv.Addr
}
