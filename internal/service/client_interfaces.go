// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService signs the terminal client in and keeps the resulting
// session in the local database so it survives restarts.
type ClientAuthService interface {
	// Register creates an account on the server and stores the session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and stores the session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Restore returns the stored session if it has not expired. An expired
	// session is removed and ErrSessionExpired returned; a missing one
	// yields ErrNotSignedIn.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the stored session.
	Logout(ctx context.Context) error
}

// ClientEntryService performs entry operations on behalf of a session.
type ClientEntryService interface {
	List(ctx context.Context, session models.Session) ([]models.Entry, error)
	Get(ctx context.Context, session models.Session, id string) (models.EntryDetailsResponse, error)

	// Create uploads the photos found at photoPaths, then creates the entry
	// referencing their hosted URLs.
	Create(ctx context.Context, session models.Session, req models.CreateEntryRequest, photoPaths ...string) (string, error)

	Update(ctx context.Context, session models.Session, id string, req models.UpdateEntryRequest) error
	Delete(ctx context.Context, session models.Session, id string) error
	Translate(ctx context.Context, session models.Session, id, targetLanguage string) (models.Translation, error)
}
