// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedEntryService(t *testing.T) (EntryService, *mock.MockEntryService) {
	t.Helper()
	inner := mock.NewMockEntryService(gomock.NewController(t))
	return NewEntryValidationService().Wrap(inner), inner
}

func TestEntryValidationService_Create(t *testing.T) {
	svc, inner := newValidatedEntryService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, 1, models.CreateEntryRequest{Title: " ", Content: "c"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.CreateEntry(ctx, 1, models.CreateEntryRequest{Title: "t", Content: "c", Mood: "🙃"})
	assert.ErrorIs(t, err, validators.ErrInvalidMood)

	_, err = svc.CreateEntry(ctx, 0, models.CreateEntryRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	req := models.CreateEntryRequest{Title: "t", Content: "c", Mood: models.MoodInspired}
	inner.EXPECT().CreateEntry(ctx, int64(1), req).Return(models.Entry{ID: "x"}, nil)
	got, err := svc.CreateEntry(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "x", got.ID)
}

func TestEntryValidationService_RejectsMalformedIDs(t *testing.T) {
	svc, _ := newValidatedEntryService(t)
	ctx := context.Background()

	_, err := svc.GetEntry(ctx, 1, "not-a-uuid")
	assert.ErrorIs(t, err, validators.ErrInvalidEntryID)

	err = svc.UpdateEntry(ctx, 1, "42", models.UpdateEntryRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, validators.ErrInvalidEntryID)

	err = svc.DeleteEntry(ctx, 1, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestEntryValidationService_UpdateRequiresTitleAndContent(t *testing.T) {
	svc, _ := newValidatedEntryService(t)

	err := svc.UpdateEntry(context.Background(), 1, testEntryID, models.UpdateEntryRequest{Title: "t"})

	assert.ErrorIs(t, err, validators.ErrEmptyContent)
}

func TestEntryValidationService_ListValidatesFilterFirst(t *testing.T) {
	svc, inner := newValidatedEntryService(t)
	ctx := context.Background()

	_, err := svc.ListEntries(ctx, 1, models.FilterSpec{DateMode: "week"})
	assert.ErrorIs(t, err, diary.ErrValidation)

	filter := models.FilterSpec{Mood: models.MoodFree}
	inner.EXPECT().ListEntries(ctx, int64(1), filter).Return([]models.Entry{}, nil)
	_, err = svc.ListEntries(ctx, 1, filter)
	assert.NoError(t, err)
}

func TestEntryValidationService_Passthrough(t *testing.T) {
	svc, inner := newValidatedEntryService(t)
	ctx := context.Background()

	inner.EXPECT().GetEntry(ctx, int64(1), testEntryID).Return(models.EntryDetailsResponse{Editable: true}, nil)
	inner.EXPECT().DeleteEntry(ctx, int64(1), testEntryID).Return(nil)

	got, err := svc.GetEntry(ctx, 1, testEntryID)
	require.NoError(t, err)
	assert.True(t, got.Editable)
	assert.NoError(t, svc.DeleteEntry(ctx, 1, testEntryID))
}
