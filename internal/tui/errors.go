// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
)

// ErrUserQuit is returned when the user leaves the client from a prompt.
var ErrUserQuit = errors.New("user quit")

var errorHints = []struct {
	target  error
	message string
}{
	{service.ErrWrongPassword, "Invalid email or password"},
	{store.ErrEmailAlreadyExists, "This email is already registered"},
	{store.ErrUsernameAlreadyExists, "This username is already taken"},
	{service.ErrEntryNotEditable, "Entries can only be edited within 3 days of creation"},
	{store.ErrEntryNotFound, "Entry not found"},
	{service.ErrSessionExpired, "Your session expired, please sign in again"},
	{service.ErrNotSignedIn, "Please sign in"},
	{service.ErrDependency, "An external service is unavailable, try again later"},
}

// humanizeError turns a client service error into a line for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if serverUnavailable(err) {
		return "No network connection or the server is unavailable"
	}

	for _, hint := range errorHints {
		if errors.Is(err, hint.target) {
			return hint.message
		}
	}

	return err.Error()
}

func serverUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

var errTitleContentRequired = errors.New("title and content are required")
