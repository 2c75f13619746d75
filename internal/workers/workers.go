// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// defaultJobTimeout bounds a single run of any worker.
const defaultJobTimeout = time.Minute

type Workers struct {
	cron    *cron.Cron
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers registers every enabled worker on a new scheduler. A run that
// is still in progress when the next tick fires is skipped.
func NewWorkers(logger *logger.Logger, workers ...Worker) (*Workers, error) {
	cronLog := cronLogger{logger: logger}
	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	w := &Workers{cron: scheduler, logger: logger}

	for _, worker := range workers {
		schedule := worker.Schedule()
		if schedule == config.KeepAliveDisabled || schedule == "" {
			logger.Info().Str("worker", worker.Name()).Msg("worker disabled")
			continue
		}

		if _, err := scheduler.AddFunc(schedule, w.job(worker)); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchedule, worker.Name(), err)
		}
		w.workers = append(w.workers, worker)

		logger.Info().Str("worker", worker.Name()).Str("schedule", schedule).Msg("worker scheduled")
	}

	return w, nil
}

// Run starts the scheduler in its own goroutine and returns immediately.
func (w *Workers) Run() {
	w.logger.Info().Int("workers", len(w.workers)).Msg("starting workers")
	w.cron.Start()
}

// Stop halts the scheduler. The returned context is done once running jobs
// have finished.
func (w *Workers) Stop() context.Context {
	w.logger.Info().Msg("stopping workers")
	return w.cron.Stop()
}

// job runs worker once with a timeout and logs the outcome.
func (w *Workers) job(worker Worker) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultJobTimeout)
		defer cancel()

		log := w.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("worker", worker.Name())
		})
		ctx = log.WithContext(ctx)

		start := time.Now()
		if err := worker.Run(ctx); err != nil {
			log.Err(err).Dur("duration", time.Since(start)).Msg("worker run failed")
			return
		}
		log.Debug().Dur("duration", time.Since(start)).Msg("worker run finished")
	}
}
