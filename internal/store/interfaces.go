// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists diary accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
	CountUsers(ctx context.Context) (int64, error)
}

// EntryRepository persists diary entries. Every method is scoped to the
// owner; an entry of another user behaves as if it did not exist.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntry(ctx context.Context, userID int64, entryID string) (models.Entry, error)
	// ListEntries returns the user's entries newest entry date first, ties
	// broken by newest creation time.
	ListEntries(ctx context.Context, userID int64) ([]models.Entry, error)
	UpdateEntryContent(ctx context.Context, userID int64, entryID, title, content string, updatedAt time.Time) error
	DeleteEntry(ctx context.Context, userID int64, entryID string) error
}

// SessionRepository keeps the client's single signed-in session.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
