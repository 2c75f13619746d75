// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

// Field names accepted by EntryValidator.
const (
	FieldEntryID   = "id"
	FieldUserID    = "user_id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldMood      = "mood_emoji"
	FieldPhotos    = "photos"
	FieldEntryDate = "entry_date"
)

const (
	maxTitleLength = 200
	maxPhotos      = 20
)

// EntryValidator validates diary entries and the create/update payloads
// that produce them.
type EntryValidator struct{}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate supports models.Entry, models.CreateEntryRequest and
// models.UpdateEntryRequest in value and pointer form.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		return v.validateEntry(ctx, *value, fields...)

	case models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldContent, FieldMood, FieldPhotos, FieldEntryDate}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEntryID:
			if !utils.IsUUID(entry.ID) {
				err = ErrInvalidEntryID
			}
		case FieldUserID:
			if entry.UserID <= 0 {
				err = ErrInvalidUserID
			}
		case FieldTitle:
			err = validateTitle(entry.Title)
		case FieldContent:
			err = validateContent(entry.Content)
		case FieldMood:
			err = validateMood(entry.Mood)
		case FieldPhotos:
			err = validatePhotos(entry.Photos)
		case FieldEntryDate:
			if entry.EntryDate.IsZero() {
				err = ErrInvalidEntryDate
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *EntryValidator) validateCreateRequest(_ context.Context, req models.CreateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldMood, FieldPhotos}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldContent:
			err = validateContent(req.Content)
		case FieldMood:
			err = validateMood(req.Mood)
		case FieldPhotos:
			err = validatePhotos(req.Photos)
		case FieldEntryDate:
			if req.EntryDate != nil && req.EntryDate.IsZero() {
				err = ErrInvalidEntryDate
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *EntryValidator) validateUpdateRequest(_ context.Context, req models.UpdateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldContent:
			err = validateContent(req.Content)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func validateMood(mood models.Mood) error {
	if !mood.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMood, string(mood))
	}
	return nil
}

func validatePhotos(photos models.Photos) error {
	if len(photos) > maxPhotos {
		return ErrTooManyPhotos
	}
	for i, photo := range photos {
		u, err := url.ParseRequestURI(photo)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w at index %d", ErrInvalidPhotoURL, i)
		}
	}
	return nil
}
