// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress     = ":8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "go-diary"
	defaultTokenDuration   = 7 * 24 * time.Hour
	defaultBcryptCost      = 10
	defaultMaxUploadSize   = 5 << 20
	defaultTranslatorURL   = "https://translate.googleapis.com"
	defaultTargetLanguage  = "ml"
	defaultTranslatorLimit = 10 * time.Second
	defaultCacheTTL        = 24 * time.Hour
	defaultKeepAlive       = "@every 24h"
	defaultAdapterAddress  = "http://localhost:8080"
	defaultLocalDSN        = "go-diary-client.db"
)

// defaults fills every optional field. It is merged last, so any value set
// by env, flags or JSON takes precedence.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			Version:       "dev",
		},
		Storage: Storage{
			Images: Images{
				Region:        "us-east-1",
				MaxUploadSize: defaultMaxUploadSize,
			},
			Local: Local{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Translator: Translator{
			BaseURL:         defaultTranslatorURL,
			DefaultLanguage: defaultTargetLanguage,
			Timeout:         defaultTranslatorLimit,
		},
		Cache: Cache{TTL: defaultCacheTTL},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{KeepAliveSchedule: defaultKeepAlive},
	}
}
