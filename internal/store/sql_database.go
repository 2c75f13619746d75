// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
)

// DB is a *sql.DB with the dialect's migrations and error classification.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the embedded migrations of the connected dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

const (
	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

// retry runs op until it succeeds, fails with an error the classifier does
// not consider retryable, or maxAttempts is reached.
func (db *DB) retry(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || db.errorClassificator == nil || attempt == maxAttempts ||
			db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}
