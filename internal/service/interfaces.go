// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntryServiceWrapper

type AuthService interface {
	// Register creates an account. The email is stored lower-cased.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks credentials and stamps the last login time.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type EntryService interface {
	CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.Entry, error)
	// GetEntry returns the entry with its edit-window status.
	GetEntry(ctx context.Context, userID int64, entryID string) (models.EntryDetailsResponse, error)
	// ListEntries returns the user's entries newest first, narrowed by filter.
	ListEntries(ctx context.Context, userID int64, filter models.FilterSpec) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, userID int64, entryID string, req models.UpdateEntryRequest) error
	DeleteEntry(ctx context.Context, userID int64, entryID string) error
}

// EntryServiceWrapper decorates an EntryService, e.g. with validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

type UploadService interface {
	// UploadPhoto checks size and image type and hosts the photo.
	UploadPhoto(ctx context.Context, upload models.Upload) (string, error)
}

type TranslationService interface {
	TranslateEntry(ctx context.Context, userID int64, entryID, targetLanguage string) (models.Translation, error)
}

type KeepAliveService interface {
	Ping(ctx context.Context) (models.KeepAliveResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
