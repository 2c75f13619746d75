// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
)

// KeepAliveWorker pings the database on a schedule so a hosted instance is
// not suspended for inactivity.
type KeepAliveWorker struct {
	service  service.KeepAliveService
	schedule string
}

func NewKeepAliveWorker(keepAlive service.KeepAliveService, schedule string) *KeepAliveWorker {
	return &KeepAliveWorker{service: keepAlive, schedule: schedule}
}

func (k *KeepAliveWorker) Name() string { return "keep-alive" }

func (k *KeepAliveWorker) Schedule() string { return k.schedule }

func (k *KeepAliveWorker) Run(ctx context.Context) error {
	resp, err := k.service.Ping(ctx)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("user_count", resp.UserCount).
		Time("timestamp", resp.Timestamp).
		Msg("keep-alive ping succeeded")
	return nil
}
