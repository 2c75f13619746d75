// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the diary server and
// client. Nested env names are built from envPrefix tags, e.g. the DSN is
// read from STORAGE_DB_DATABASE_URI.
type StructuredConfig struct {
	App        App        `envPrefix:"APP_"`
	Storage    Storage    `envPrefix:"STORAGE_"`
	Server     Server     `envPrefix:"SERVER_"`
	Translator Translator `envPrefix:"TRANSLATOR_"`
	Cache      Cache      `envPrefix:"CACHE_"`
	Adapter    Adapter    `envPrefix:"ADAPTER_"`
	Workers    Workers    `envPrefix:"WORKERS_"`

	// JSONFilePath points to an optional JSON config file.
	// Env: CONFIG, flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and password-hashing settings.
type App struct {
	// TokenSignKey signs and verifies HS256 access tokens. Required.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
}

// Storage groups every persistence backend.
type Storage struct {
	DB     DB     `envPrefix:"DB_"`
	Images Images `envPrefix:"IMAGES_"`
	Local  Local  `envPrefix:"LOCAL_"`
}

// DB holds the server's PostgreSQL connection settings.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Images configures the S3-compatible bucket that hosts entry photos.
type Images struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// PublicURL is the base URL under which uploaded objects are reachable,
	// e.g. "https://cdn.example.com". Object keys are appended to it.
	PublicURL string `env:"PUBLIC_URL"`

	// MaxUploadSize caps a single photo upload in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Local holds the client's SQLite database settings.
type Local struct {
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists origins allowed by CORS. Comma separated in env.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Translator configures the machine translation backend.
type Translator struct {
	BaseURL         string        `env:"BASE_URL"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE"`
	Timeout         time.Duration `env:"TIMEOUT"`
}

// Cache configures the optional Redis cache for translations.
// An empty RedisAddress disables caching.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	TTL           time.Duration `env:"TTL"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures scheduled background jobs.
type Workers struct {
	// KeepAliveSchedule is a cron spec ("@every 24h", "0 3 * * *").
	// An empty value after defaults are applied is not possible; use
	// "-" to disable the job.
	KeepAliveSchedule string `env:"KEEP_ALIVE_SCHEDULE"`
}

// KeepAliveDisabled is the KeepAliveSchedule value that turns the job off.
const KeepAliveDisabled = "-"

// GetStructuredConfig loads env, flags and the JSON file, applies defaults and
// validates the result for the server.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
