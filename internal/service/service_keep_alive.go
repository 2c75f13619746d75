// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// keepAliveService touches the database with a cheap count so hosted
// databases that pause on inactivity stay awake.
type keepAliveService struct {
	users  store.UserRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewKeepAliveService(users store.UserRepository, logger *logger.Logger) KeepAliveService {
	return &keepAliveService{
		users:  users,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *keepAliveService) Ping(ctx context.Context) (models.KeepAliveResponse, error) {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("keep-alive query failed")
		return models.KeepAliveResponse{}, fmt.Errorf("keep-alive: %w", err)
	}

	return models.KeepAliveResponse{
		Status:    "alive",
		Timestamp: s.now(),
		UserCount: count,
	}, nil
}
