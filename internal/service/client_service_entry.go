// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

type clientEntryService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientEntryService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientEntryService {
	return &clientEntryService{adapter: serverAdapter, logger: logger}
}

func (c *clientEntryService) List(ctx context.Context, session models.Session) ([]models.Entry, error) {
	entries, err := c.adapter.ListEntries(ctx, session.Token)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

func (c *clientEntryService) Get(ctx context.Context, session models.Session, id string) (models.EntryDetailsResponse, error) {
	entry, err := c.adapter.GetEntry(ctx, session.Token, id)
	if err != nil {
		return models.EntryDetailsResponse{}, mapAdapterError(err)
	}
	return entry, nil
}

func (c *clientEntryService) Create(ctx context.Context, session models.Session, req models.CreateEntryRequest, photoPaths ...string) (string, error) {
	for _, p := range photoPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		url, err := c.uploadFile(ctx, session.Token, p)
		if err != nil {
			return "", err
		}
		req.Photos = append(req.Photos, url)
	}

	id, err := c.adapter.CreateEntry(ctx, session.Token, req)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return id, nil
}

func (c *clientEntryService) uploadFile(ctx context.Context, token, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open photo %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat photo %s: %w", path, err)
	}

	url, err := c.adapter.UploadPhoto(ctx, token, models.Upload{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
		Size:        info.Size(),
		Body:        f,
	})
	if err != nil {
		c.logger.Err(err).Str("path", path).Msg("photo upload failed")
		return "", mapAdapterError(err)
	}
	return url, nil
}

func (c *clientEntryService) Update(ctx context.Context, session models.Session, id string, req models.UpdateEntryRequest) error {
	return mapAdapterError(c.adapter.UpdateEntry(ctx, session.Token, id, req))
}

func (c *clientEntryService) Delete(ctx context.Context, session models.Session, id string) error {
	return mapAdapterError(c.adapter.DeleteEntry(ctx, session.Token, id))
}

func (c *clientEntryService) Translate(ctx context.Context, session models.Session, id, targetLanguage string) (models.Translation, error) {
	translation, err := c.adapter.TranslateEntry(ctx, session.Token, id, targetLanguage)
	if err != nil {
		return models.Translation{}, mapAdapterError(err)
	}
	return translation, nil
}
