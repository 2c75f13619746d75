// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs scheduled background jobs of the diary server.
//
// Jobs implement Worker and are registered on a robfig/cron scheduler owned
// by Workers. The scheduler is started after the database connection is
// established and stopped during graceful shutdown.
package workers

import "context"

// Worker is a job run on a cron schedule.
//
// Schedule returns a standard five-field cron spec or a descriptor such as
// "@every 24h". The value "-" disables the worker.
type Worker interface {
	Name() string
	Schedule() string
	Run(ctx context.Context) error
}
