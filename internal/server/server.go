// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/handler"
	"github.com/MKhiriev/go-diary/internal/logger"
)

type server struct {
	httpServer *httpServer
	jobs       BackgroundJobs
	logger     *logger.Logger
}

// NewServer wires the HTTP handler and the optional background jobs.
func NewServer(handlers *handler.Handlers, jobs BackgroundJobs, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		jobs:       jobs,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

// run serves until ctx is cancelled or the listener fails, then shuts
// everything down.
func (s *server) run(ctx context.Context) {
	serveErrs := make(chan error, 1)

	if s.jobs != nil {
		s.jobs.Run()
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer(serveErrs)

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-serveErrs:
		s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	if s.jobs != nil {
		select {
		case <-s.jobs.Stop().Done():
		case <-time.After(shutdownTimeout):
			s.logger.Warn().Msg("background jobs did not finish before shutdown timeout")
		}
	}
}
