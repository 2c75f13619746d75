// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEntryID = "0190f1c2-7b7e-7c3a-9a51-1f2e3d4c5b6a"

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &entryRepository{db: db, logger: logger.Nop(), psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}, mock
}

func entryRow(id string, day time.Time, created time.Time, updated any) []driver.Value {
	return []driver.Value{id, int64(1), "Title " + id, "Content", day, []byte(`["https://cdn/a.png"]`), "😊", created, updated}
}

func TestCreateEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day, _ := models.ParseDate("2023-12-24")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO diary_entries (id,user_id,title,content,entry_date,photos,mood_emoji,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)")).
		WithArgs(testEntryID, int64(1), "Title", "Content", sqlmock.AnyArg(), "[]", "", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, err := repo.CreateEntry(context.Background(), models.Entry{
		ID: testEntryID, UserID: 1, Title: "Title", Content: "Content", EntryDate: day, CreatedAt: created,
	})

	require.NoError(t, err)
	assert.Equal(t, models.Photos{}, entry.Photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntry_DBError(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectExec("INSERT INTO diary_entries").WillReturnError(errors.New("boom"))

	_, err := repo.CreateEntry(context.Background(), models.Entry{ID: testEntryID})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, title, content, entry_date, photos, mood_emoji, created_at, updated_at FROM diary_entries WHERE id = $1 AND user_id = $2")).
		WithArgs(testEntryID, int64(1)).
		WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(entryRow(testEntryID, day, created, nil)...))

	entry, err := repo.GetEntry(context.Background(), 1, testEntryID)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", entry.EntryDate.String())
	assert.Equal(t, models.Photos{"https://cdn/a.png"}, entry.Photos)
	assert.Equal(t, models.MoodHappy, entry.Mood)
	assert.True(t, entry.UpdatedAt.IsZero())
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM diary_entries").
		WillReturnRows(sqlmock.NewRows(entryColumns))

	_, err := repo.GetEntry(context.Background(), 1, testEntryID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestGetEntry_MalformedIDIsNotFound(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM diary_entries").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetEntry(context.Background(), 1, "nope")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestListEntries_Ordered(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM diary_entries WHERE user_id = $1 ORDER BY entry_date DESC, created_at DESC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(entryRow("b", day, now, now)...).
			AddRow(entryRow("a", day, now.Add(-time.Hour), nil)...))

	entries, err := repo.ListEntries(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, now, entries[0].UpdatedAt)
}

func TestListEntries_Empty(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectQuery("FROM diary_entries").WillReturnRows(sqlmock.NewRows(entryColumns))

	entries, err := repo.ListEntries(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListEntries_ScanError(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectQuery("FROM diary_entries").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only-id"))

	_, err := repo.ListEntries(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUpdateEntryContent(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE diary_entries SET title = $1, content = $2, updated_at = $3 WHERE id = $4 AND user_id = $5")).
		WithArgs("New", "Body", at, testEntryID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateEntryContent(context.Background(), 1, testEntryID, "New", "Body", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntryContent_NotOwned(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	mock.ExpectExec("UPDATE diary_entries").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateEntryContent(context.Background(), 2, testEntryID, "t", "c", time.Now())
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM diary_entries WHERE id = $1 AND user_id = $2")).
		WithArgs(testEntryID, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteEntry(context.Background(), 1, testEntryID))

	mock.ExpectExec("DELETE FROM diary_entries").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteEntry(context.Background(), 1, testEntryID), ErrEntryNotFound)

	mock.ExpectExec("DELETE FROM diary_entries").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.DeleteEntry(context.Background(), 1, testEntryID), ErrExecutingStatement)
}
