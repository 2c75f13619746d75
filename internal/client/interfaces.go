// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-diary/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in. notice is shown on the
	// first page when set.
	LoginFlow(ctx context.Context, notice string) (models.Session, error)

	// MainLoop shows the diary for session until the user logs out or quits.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
