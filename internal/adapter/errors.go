// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected response")

	ErrInvalidAddress     = errors.New("invalid server address")
	ErrForeignImageURL    = errors.New("image url does not belong to this store")
	ErrUploadFailed       = errors.New("image upload failed")
	ErrTranslationFailed  = errors.New("translation failed")
	ErrMissingImageConfig = errors.New("image store is not configured")
)
