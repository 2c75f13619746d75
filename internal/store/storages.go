// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-diary/internal/logger"

// Storages bundles the server repositories sharing one database.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
	}
}

// ClientStorages bundles the client's local repositories.
type ClientStorages struct {
	SessionRepository SessionRepository
}

func NewClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, log),
	}
}
