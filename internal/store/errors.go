// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors returned by repositories. Match them with errors.Is.
var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrNoUserWasFound        = errors.New("no user was found")

	// ErrEntryNotFound covers both absent entries and entries owned by
	// another user.
	ErrEntryNotFound = errors.New("entry was not found")

	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
