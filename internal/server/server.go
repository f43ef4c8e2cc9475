// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type server struct {
	httpServer      *httpServer
	gRPCServer      *grpcServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates a server for every handler built by
// [handler.NewHandlers].
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoTransports
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNothingToServe
	}

	for i, t := range transports {
		if err := t.listen(); err != nil {
			for _, opened := range transports[:i] {
				opened.closeListener()
			}
			return fmt.Errorf("%s server listen: %w", t.name(), err)
		}
	}

	serveErrors := make(chan error, len(transports))
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func() {
			if err := t.serve(); err != nil {
				serveErrors <- fmt.Errorf("%s server: %w", t.name(), err)
				return
			}
			serveErrors <- nil
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrors:
	}

	s.Shutdown()

	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return runErr
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, t := range s.transports() {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s server shutdown: %w", t.name(), err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Err(err).Msg("error shutting down servers")
	}
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}
