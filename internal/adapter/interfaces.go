// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the diary: the REST
// client used by the terminal dashboard, photo hosting on S3-compatible
// object storage and machine translation.
//
// Transport failures are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] regardless of the remote protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client side of the diary REST API. Every authenticated
// call takes the bearer token explicitly; the adapter keeps no session state.
type ServerAdapter interface {
	// Register creates an account and returns the issued token and profile.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a token and profile.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	Profile(ctx context.Context, token string) (models.User, error)

	// ListEntries returns the caller's entries newest first.
	ListEntries(ctx context.Context, token string) ([]models.Entry, error)

	// GetEntry returns a single entry together with its edit-window status.
	GetEntry(ctx context.Context, token, id string) (models.EntryDetailsResponse, error)

	// CreateEntry stores a new entry and returns its id.
	CreateEntry(ctx context.Context, token string, req models.CreateEntryRequest) (string, error)

	// UpdateEntry replaces title and content. Returns [ErrForbidden] (wrapped)
	// once the edit window has closed.
	UpdateEntry(ctx context.Context, token, id string, req models.UpdateEntryRequest) error

	DeleteEntry(ctx context.Context, token, id string) error

	// TranslateEntry asks the server to translate title and content into lang.
	// An empty lang selects the server default.
	TranslateEntry(ctx context.Context, token, id, lang string) (models.Translation, error)

	// UploadPhoto hosts an image and returns its public URL.
	UploadPhoto(ctx context.Context, token string, upload models.Upload) (string, error)

	// Health reports whether the server answers /api/health.
	Health(ctx context.Context) error
}

// ImageStore hosts photos attached to entries.
type ImageStore interface {
	// Upload stores the image and returns the URL it is served from.
	Upload(ctx context.Context, upload models.Upload) (string, error)

	// Delete releases an image previously returned by Upload.
	// URLs not produced by this store yield [ErrForeignImageURL].
	Delete(ctx context.Context, url string) error
}

// Translator translates free text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
