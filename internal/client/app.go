// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
)

// App restores or establishes a session and runs the diary until the user
// quits.
type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, errNoAuthService
	}
	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

// Run blocks until the user quits. Logging out or losing the session
// returns to the sign-in pages.
func (a *App) Run() error {
	ctx := context.Background()
	notice := ""

	for {
		session, err := a.session(ctx, notice)
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, session)
		switch {
		case errors.Is(err, service.ErrSessionExpired):
			if err = a.auth.Logout(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("forget expired session")
			}
			notice = "Your session expired, please sign in again"
			continue
		case err != nil:
			return fmt.Errorf("main loop: %w", err)
		case !logout:
			return nil
		}

		a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
		notice = "You have been logged out"
	}
}

// session returns the stored session or asks the user to sign in.
func (a *App) session(ctx context.Context, notice string) (models.Session, error) {
	session, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, service.ErrSessionExpired):
		notice = "Your session expired, please sign in again"
	case !errors.Is(err, service.ErrNotSignedIn):
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return a.ui.LoginFlow(ctx, notice)
}
