// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	// ErrDependency marks failures of the image host or the translator.
	ErrDependency = errors.New("dependency failure")

	ErrEntryNotEditable = errors.New("entry is no longer editable")

	ErrEmptyUpload          = errors.New("no file uploaded")
	ErrPhotoTooLarge        = errors.New("photo exceeds the upload size limit")
	ErrUnsupportedPhotoType = errors.New("unsupported photo type")
)

// Client side.
var (
	ErrNotSignedIn      = errors.New("not signed in")
	ErrSessionExpired   = errors.New("session expired, please sign in again")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrServerRejected   = errors.New("server rejected the request")
)
