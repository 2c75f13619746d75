// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations are written as
// Go duration strings ("30s", "168h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Images struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicURL       string `json:"public_url"`
			MaxUploadSize   int64  `json:"max_upload_size"`
		} `json:"images"`
		Local struct {
			DSN string `json:"dsn"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server"`

	Translator struct {
		BaseURL         string   `json:"base_url"`
		DefaultLanguage string   `json:"default_language"`
		Timeout         Duration `json:"timeout"`
	} `json:"translator"`

	Cache struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		TTL           Duration `json:"ttl"`
	} `json:"cache"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		KeepAliveSchedule string `json:"keep_alive_schedule"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			BcryptCost:    j.App.BcryptCost,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Images: Images{
				Bucket:          j.Storage.Images.Bucket,
				Region:          j.Storage.Images.Region,
				Endpoint:        j.Storage.Images.Endpoint,
				AccessKeyID:     j.Storage.Images.AccessKeyID,
				SecretAccessKey: j.Storage.Images.SecretAccessKey,
				PublicURL:       j.Storage.Images.PublicURL,
				MaxUploadSize:   j.Storage.Images.MaxUploadSize,
			},
			Local: Local{DSN: j.Storage.Local.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			AllowedOrigins: j.Server.AllowedOrigins,
		},
		Translator: Translator{
			BaseURL:         j.Translator.BaseURL,
			DefaultLanguage: j.Translator.DefaultLanguage,
			Timeout:         time.Duration(j.Translator.Timeout),
		},
		Cache: Cache{
			RedisAddress:  j.Cache.RedisAddress,
			RedisPassword: j.Cache.RedisPassword,
			RedisDB:       j.Cache.RedisDB,
			TTL:           time.Duration(j.Cache.TTL),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{KeepAliveSchedule: j.Workers.KeepAliveSchedule},
	}, nil
}

// Duration unmarshals from a Go duration string ("1h") or from nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
