// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load local session: %w", err)
	}

	if !session.Active(a.now()) {
		if err = a.sessions.DeleteSession(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("could not remove expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("remove local session: %w", err)
	}
	return nil
}

// saveSession persists resp as the current session. The expiry is read from
// the token without verifying it; the server remains the authority.
func (a *clientAuthService) saveSession(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	session := models.Session{
		UserID:    resp.User.UserID,
		Email:     resp.User.Email,
		Username:  resp.User.Username,
		Token:     resp.Token,
		CreatedAt: a.now().UTC(),
	}

	claims, err := utils.ParseUnverifiedClaims(resp.Token)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not read token expiry")
	} else if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.UTC()
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save local session: %w", err)
	}

	return session, nil
}
