// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/store"
)

// mapAdapterError translates a transport error into the matching service or
// store error so the dashboard can react with errors.Is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		return ErrNotSignedIn

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgEntryNotEditable {
			return ErrEntryNotEditable
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrEntryNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyRegistered:
			return store.ErrEmailAlreadyExists
		case app.MsgUsernameAlreadyTaken:
			return store.ErrUsernameAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %s", ErrDependency, msg)

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrUnexpectedResponse):
		return fmt.Errorf("%w: %w", ErrServerRejected, err)
	}

	return err
}

// extractBody returns the message after the sentinel prefix of an adapter
// error ("forbidden: <message>").
func extractBody(err error) string {
	msg := err.Error()
	if _, body, ok := strings.Cut(msg, ": "); ok {
		return body
	}
	return msg
}
