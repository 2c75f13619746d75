// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal screens of the diary client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	language  string
	logger    *logger.Logger
}

// New returns a TUI backed by services. language is the translation target
// offered on the entry screen.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, language string, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		language:  language,
		logger:    logger,
	}, nil
}

// LoginFlow shows the welcome, sign in and registration pages until the
// user signs in. notice, when set, is shown on the welcome page.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Session, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(notice),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("signed in")
	return result.session, nil
}

// MainLoop shows the diary for session. It returns logout true when the
// user signed out, and service.ErrSessionExpired when the server stopped
// accepting the session.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newAppModel(ctx, t.services, session, t.language)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.expired {
		t.logger.Info().Int64("user_id", session.UserID).Msg("session expired")
		return true, service.ErrSessionExpired
	}
	return result.logout, nil
}
