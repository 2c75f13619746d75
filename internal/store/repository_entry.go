// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

var entryColumns = []string{"id", "user_id", "title", "content", "entry_date", "photos", "mood_emoji", "created_at", "updated_at"}

// entryRepository is the PostgreSQL implementation of [EntryRepository].
// Statements are built with squirrel using $n placeholders.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
	psql   sq.StatementBuilderType
}

func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	photos := entry.Photos
	if photos == nil {
		photos = models.Photos{}
	}

	query, args, err := r.psql.Insert(entry.TableName()).
		Columns("id", "user_id", "title", "content", "entry_date", "photos", "mood_emoji", "created_at").
		Values(entry.ID, entry.UserID, entry.Title, entry.Content, entry.EntryDate, photos, string(entry.Mood), entry.CreatedAt).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error inserting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	entry.Photos = photos
	return entry, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, userID int64, entryID string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.psql.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Msg("error scanning entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) ListEntries(ctx context.Context, userID int64) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.psql.Select(entryColumns...).
		From(models.Entry{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.Entry
	err = r.db.retry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		entries = make([]models.Entry, 0)
		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error listing entries")
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) UpdateEntryContent(ctx context.Context, userID int64, entryID, title, content string, updatedAt time.Time) error {
	query, args, err := r.psql.Update(models.Entry{}.TableName()).
		Set("title", title).
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*entryRepository.UpdateEntryContent", query, args)
}

func (r *entryRepository) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	query, args, err := r.psql.Delete(models.Entry{}.TableName()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*entryRepository.DeleteEntry", query, args)
}

// execAffectingOne runs a statement that must touch exactly one owned row.
func (r *entryRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if isInvalidID(err) {
		return ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		mood      string
		updatedAt sql.NullTime
	)
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.EntryDate,
		&entry.Photos, &mood, &entry.CreatedAt, &updatedAt)
	if err != nil {
		return models.Entry{}, err
	}

	entry.Mood = models.Mood(mood)
	if updatedAt.Valid {
		entry.UpdatedAt = updatedAt.Time
	}
	return entry, nil
}

// isInvalidID reports a malformed uuid literal rejected by PostgreSQL.
func isInvalidID(err error) bool {
	code, _ := postgresError(err)
	return code == pgerrcode.InvalidTextRepresentation
}
