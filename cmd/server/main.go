// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/handler"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/server"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-diary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	deps, closeDeps, err := newDependencies(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dependencies")
	}
	defer closeDeps()

	services, err := service.NewServices(store.NewStorages(db, log), deps, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs, err := workers.NewWorkers(log,
		workers.NewKeepAliveWorker(services.KeepAliveService, cfg.Workers.KeepAliveSchedule),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newDependencies builds the image store and the translator. A missing
// bucket disables uploads; an unreachable Redis disables the translation
// cache. Neither stops the server.
func newDependencies(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.Dependencies, func(), error) {
	var deps service.Dependencies
	closeDeps := func() {}

	images, err := adapter.NewS3ImageStore(ctx, cfg.Storage.Images, log)
	switch {
	case errors.Is(err, adapter.ErrMissingImageConfig):
		log.Warn().Msg("image store is not configured, photo uploads are disabled")
	case err != nil:
		return deps, closeDeps, fmt.Errorf("error creating image store: %w", err)
	default:
		deps.Images = images
	}

	translator := adapter.NewGoogleTranslator(cfg.Translator, log)
	if cfg.Cache.RedisAddress != "" {
		redisClient, err := adapter.NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			log.Warn().Err(err).Msg("redis is unreachable, translations are not cached")
		} else {
			translator = adapter.NewCachedTranslator(translator, redisClient, cfg.Cache.TTL, log)
			closeDeps = func() { _ = redisClient.Close() }
		}
	}
	deps.Translator = translator

	return deps, closeDeps, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
