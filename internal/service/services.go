// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type Services struct {
	AuthService        AuthService
	EntryService       EntryService
	UploadService      UploadService
	TranslationService TranslationService
	KeepAliveService   KeepAliveService
	AppInfoService     AppInfoService
}

// Dependencies are the outbound integrations the services call.
type Dependencies struct {
	Images     adapter.ImageStore
	Translator adapter.Translator
}

func NewServices(storages *store.Storages, deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	entries := NewEntryService(storages.EntryRepository, deps.Images, logger)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		EntryService:       NewEntryValidationService().Wrap(entries),
		UploadService:      NewUploadService(deps.Images, cfg.Storage.Images, logger),
		TranslationService: NewTranslationService(storages.EntryRepository, deps.Translator, cfg.Translator, logger),
		KeepAliveService:   NewKeepAliveService(storages.UserRepository, logger),
		AppInfoService:     appInfo,
	}, nil
}
