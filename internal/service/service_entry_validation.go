// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

// EntryValidationService rejects malformed input before it reaches the
// wrapped EntryService. All failures wrap ErrInvalidDataProvided.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.Entry, error) {
	if userID <= 0 {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, req, validators.FieldTitle, validators.FieldContent,
		validators.FieldMood, validators.FieldPhotos, validators.FieldEntryDate); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateEntry(ctx, userID, req)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, userID int64, entryID string) (models.EntryDetailsResponse, error) {
	if err := validateEntryID(entryID); err != nil {
		return models.EntryDetailsResponse{}, err
	}

	return v.inner.GetEntry(ctx, userID, entryID)
}

func (v *EntryValidationService) ListEntries(ctx context.Context, userID int64, filter models.FilterSpec) ([]models.Entry, error) {
	if _, err := diary.CompileFilter(filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListEntries(ctx, userID, filter)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, userID int64, entryID string, req models.UpdateEntryRequest) error {
	if err := validateEntryID(entryID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateEntry(ctx, userID, entryID, req)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	if err := validateEntryID(entryID); err != nil {
		return err
	}

	return v.inner.DeleteEntry(ctx, userID, entryID)
}

func validateEntryID(entryID string) error {
	if !utils.IsUUID(entryID) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidEntryID)
	}
	return nil
}
