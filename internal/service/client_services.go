// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	EntryService ClientEntryService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		EntryService: NewClientEntryService(serverAdapter, logger),
	}
}
