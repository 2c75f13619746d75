// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
)

const defaultMaxUploadSize = 5 << 20

var (
	allowedPhotoTypes      = []string{"image/jpeg", "image/png", "image/gif"}
	allowedPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}
)

type uploadService struct {
	images  adapter.ImageStore
	maxSize int64
	logger  *logger.Logger
}

func NewUploadService(images adapter.ImageStore, cfg config.Images, logger *logger.Logger) UploadService {
	maxSize := cfg.MaxUploadSize
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	return &uploadService{images: images, maxSize: maxSize, logger: logger}
}

// UploadPhoto buffers at most maxSize+1 bytes, sniffs the content type from
// the data itself and hands the photo to the image store.
func (s *uploadService) UploadPhoto(ctx context.Context, upload models.Upload) (string, error) {
	log := logger.FromContext(ctx)

	if upload.Body == nil {
		return "", ErrEmptyUpload
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext != "" && !slices.Contains(allowedPhotoExtensions, ext) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPhotoType, ext)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrPhotoTooLarge
	}

	contentType := http.DetectContentType(data)
	if !slices.Contains(allowedPhotoTypes, contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPhotoType, contentType)
	}

	if s.images == nil {
		return "", fmt.Errorf("%w: %w", ErrDependency, adapter.ErrMissingImageConfig)
	}

	url, err := s.images.Upload(ctx, models.Upload{
		Filename:    upload.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		log.Err(err).Str("filename", upload.Filename).Msg("photo upload failed")
		return "", fmt.Errorf("%w: %w", ErrDependency, err)
	}

	log.Info().Str("url", url).Int("size", len(data)).Msg("photo uploaded")
	return url, nil
}
