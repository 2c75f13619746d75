// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-diary/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the sign-in flow to another page. A non-nil Payload
// is delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login and register pages.
type LoginResult struct {
	Session models.Session
	Err     error
}

type entriesLoadedMsg struct {
	entries []models.Entry
	err     error
}

type entryOpenedMsg struct {
	details models.EntryDetailsResponse
	err     error
}

type entrySavedMsg struct {
	id  string
	err error
}

type entryDeletedMsg struct {
	id  string
	err error
}

type translatedMsg struct {
	id          string
	translation models.Translation
	err         error
}

type loggedOutMsg struct {
	err error
}

type quitMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
