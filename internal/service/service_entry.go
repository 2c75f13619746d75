// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

type entryService struct {
	entries store.EntryRepository
	images  adapter.ImageStore
	ids     *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewEntryService returns the owner-scoped diary entry service. images may be
// nil, in which case photo cleanup on delete is skipped.
func NewEntryService(entries store.EntryRepository, images adapter.ImageStore, logger *logger.Logger) EntryService {
	return &entryService{
		entries: entries,
		images:  images,
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

func (s *entryService) CreateEntry(ctx context.Context, userID int64, req models.CreateEntryRequest) (models.Entry, error) {
	now := s.now()

	entryDate := models.NewDate(now)
	if req.EntryDate != nil && !req.EntryDate.IsZero() {
		entryDate = *req.EntryDate
	}

	photos := req.Photos
	if photos == nil {
		photos = models.Photos{}
	}

	entry, err := s.entries.CreateEntry(ctx, models.Entry{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Title:     strings.TrimSpace(req.Title),
		Content:   strings.TrimSpace(req.Content),
		EntryDate: entryDate,
		Photos:    photos,
		Mood:      req.Mood,
		CreatedAt: now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("entry creation failed")
		return models.Entry{}, fmt.Errorf("entry creation failed: %w", err)
	}

	return entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID int64, entryID string) (models.EntryDetailsResponse, error) {
	entry, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.EntryDetailsResponse{}, fmt.Errorf("get entry: %w", err)
	}

	now := s.now()
	return models.EntryDetailsResponse{
		EntryResponse: models.NewEntryResponse(entry),
		UserID:        entry.UserID,
		Editable:      diary.IsEditable(entry.CreatedAt, now),
		EditableUntil: diary.EditableUntil(entry.CreatedAt, now.Location()),
	}, nil
}

// ListEntries applies filter in memory after loading the user's entries. A
// zero filter returns everything.
func (s *entryService) ListEntries(ctx context.Context, userID int64, filter models.FilterSpec) ([]models.Entry, error) {
	entries, err := s.entries.ListEntries(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing entries failed")
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if filter.IsZero() {
		return entries, nil
	}

	filtered, err := diary.Filter(entries, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return filtered, nil
}

// UpdateEntry rewrites title and content while the edit window, counted from
// the creation time, is still open.
func (s *entryService) UpdateEntry(ctx context.Context, userID int64, entryID string, req models.UpdateEntryRequest) error {
	log := logger.FromContext(ctx)

	entry, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("get entry for update: %w", err)
	}

	now := s.now()
	if !diary.IsEditable(entry.CreatedAt, now) {
		log.Debug().Str("entry_id", entryID).Time("created_at", entry.CreatedAt).Msg("edit window closed")
		return ErrEntryNotEditable
	}

	err = s.entries.UpdateEntryContent(ctx, userID, entryID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Content), now)
	if err != nil {
		log.Err(err).Str("entry_id", entryID).Msg("entry update failed")
		return fmt.Errorf("entry update failed: %w", err)
	}

	return nil
}

// DeleteEntry releases the entry's hosted photos and then removes the
// record. Photo cleanup is best effort: failures are logged and never
// block the deletion.
func (s *entryService) DeleteEntry(ctx context.Context, userID int64, entryID string) error {
	log := logger.FromContext(ctx)

	entry, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("get entry for delete: %w", err)
	}

	s.releasePhotos(ctx, entry)

	if err = s.entries.DeleteEntry(ctx, userID, entryID); err != nil {
		log.Err(err).Str("entry_id", entryID).Msg("entry deletion failed")
		return fmt.Errorf("entry deletion failed: %w", err)
	}

	return nil
}

func (s *entryService) releasePhotos(ctx context.Context, entry models.Entry) {
	if s.images == nil {
		return
	}

	log := logger.FromContext(ctx)
	for _, url := range entry.Photos {
		if err := s.images.Delete(ctx, url); err != nil {
			log.Warn().Err(err).Str("entry_id", entry.ID).Str("photo", url).Msg("photo cleanup failed")
		}
	}
}
