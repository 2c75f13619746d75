// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the client's transport settings.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB holds the client's local SQLite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the subset of [StructuredConfig] the terminal client needs.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage

	// DefaultLanguage is the translation target offered by the dashboard.
	DefaultLanguage string
}

// GetClientConfig loads the merged configuration and maps the client view.
// Server-only settings are not validated here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.DSN},
		},
		DefaultLanguage: cfg.Translator.DefaultLanguage,
	}
}
