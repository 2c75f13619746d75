// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidEntryID   = errors.New("invalid entry id")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrInvalidMood      = errors.New("unknown mood")
	ErrInvalidPhotoURL  = errors.New("invalid photo url")
	ErrTooManyPhotos    = errors.New("too many photos")
	ErrInvalidEntryDate = errors.New("invalid entry date")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)
