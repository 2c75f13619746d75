// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
)

// errorStatuses is ordered: the first match wins, so errors that name a
// cause (a rejected dependency, a missing entry) come before the generic
// storage failures they may wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrDependency, http.StatusBadGateway},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},
	{service.ErrEntryNotEditable, http.StatusForbidden},
	{service.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrEmptyUpload, http.StatusBadRequest},
	{service.ErrUnsupportedPhotoType, http.StatusBadRequest},
	{diary.ErrValidation, http.StatusBadRequest},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrEntryNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered: the first match wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrWrongPassword, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrEntryNotEditable, app.MsgEntryNotEditable},
	{service.ErrEmptyUpload, app.MsgNoFileUploaded},
	{service.ErrPhotoTooLarge, app.MsgPhotoTooLarge},
	{service.ErrUnsupportedPhotoType, app.MsgUnsupportedPhoto},
	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyRegistered},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameAlreadyTaken},
	{store.ErrEntryNotFound, app.MsgEntryNotFound},
	{store.ErrNoUserWasFound, app.MsgUserNotFound},
	{validators.ErrInvalidEntryID, app.MsgInvalidEntryID},
}

// validationErrors carry messages that are safe to show as they are.
var validationErrors = []error{
	validators.ErrPasswordTooShort,
	validators.ErrInvalidEmail,
	validators.ErrEmptyEmail,
	validators.ErrEmptyUsername,
	validators.ErrEmptyPassword,
	validators.ErrEmptyTitle,
	validators.ErrEmptyContent,
	validators.ErrTitleTooLong,
	validators.ErrInvalidMood,
	validators.ErrInvalidPhotoURL,
	validators.ErrTooManyPhotos,
	validators.ErrInvalidEntryDate,
}

// messageFromError returns the client-facing message for err. Server-side
// failures never leak their cause. fallback is used for statuses without a
// more specific message.
func messageFromError(err error, status int, fallback string) string {
	if status == http.StatusInternalServerError {
		if fallback != "" {
			return fallback
		}
		return app.MsgInternalServerErr
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	var validationErr *diary.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	if fallback != "" {
		return fallback
	}
	if status == http.StatusBadRequest {
		return app.MsgInvalidDataProvided
	}
	return http.StatusText(status)
}

// writeServiceError logs err and answers with the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error, fallback string) {
	status := statusFromError(err)
	message := messageFromError(err, status, fallback)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}

// missingField reports whether err is one of the "field is required"
// validation errors in targets.
func missingField(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
