// Package http runs the API server and tears it down on shutdown.
package http

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ShutdownFunc releases a component during graceful shutdown.
type ShutdownFunc func(ctx context.Context) error

// Options configures the server.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer      *stdhttp.Server
	shutdownTimeout time.Duration
	log             zerolog.Logger

	mu            sync.Mutex
	shutdownFuncs []ShutdownFunc
}

func New(handler stdhttp.Handler, opts Options, log zerolog.Logger) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 15 * time.Second
	}
	return &Server{
		httpServer: &stdhttp.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      opts.WriteTimeout,
		},
		shutdownTimeout: opts.ShutdownTimeout,
		log:             log,
	}
}

// OnShutdown registers fn to run after the HTTP server stops. Components
// are stopped in reverse registration order.
func (s *Server) OnShutdown(name string, fn ShutdownFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdownFuncs = append(s.shutdownFuncs, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			s.log.Error().Err(err).Str("component", name).Msg("component shutdown error")
			return err
		}
		s.log.Info().Str("component", name).Msg("component stopped")
		return nil
	})
}

// Run serves until ctx is done or the listener fails, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		_ = s.stopComponents()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info().Msg("shutdown signal received")
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.httpServer.SetKeepAlivesEnabled(false)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Error().Err(err).Msg("http server shutdown error")
	}
	s.log.Info().Msg("http server stopped")

	return s.stopComponentsWith(ctx)
}

func (s *Server) stopComponents() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.stopComponentsWith(ctx)
}

func (s *Server) stopComponentsWith(ctx context.Context) error {
	s.mu.Lock()
	funcs := s.shutdownFuncs
	s.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		if err := funcs[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.log.Info().Msg("server stopped gracefully")
	return nil
}
