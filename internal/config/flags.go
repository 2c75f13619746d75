// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair implementing flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a config layer.
//
// Flags:
//
//	-a                   server address host:port
//	-d                   PostgreSQL DSN
//	-c, -config          JSON config file path
//	-token-sign-key      token signing key
//	-token-issuer        token issuer
//	-token-duration      token lifetime (e.g. 168h)
//	-request-timeout     per-request timeout (e.g. 30s)
//	-allowed-origins     comma separated CORS origins
//	-s3-bucket           photo bucket
//	-s3-endpoint         custom S3 endpoint (MinIO, R2)
//	-s3-public-url       public base URL of the bucket
//	-translator-url      translation service base URL
//	-redis-address       Redis address for the translation cache
//	-keep-alive          keep-alive cron schedule, "-" disables it
//	-server-url          server base URL used by the client
//	-local-db            client SQLite database path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-diary", flag.ContinueOnError)

	var serverAddress NetAddress
	var (
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		allowedOrigins string
		s3Bucket       string
		s3Endpoint     string
		s3PublicURL    string
		translatorURL  string
		redisAddress   string
		keepAlive      string
		serverURL      string
		localDB        string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "Photo bucket name")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "Custom S3 endpoint")
	fs.StringVar(&s3PublicURL, "s3-public-url", "", "Public base URL of the photo bucket")
	fs.StringVar(&translatorURL, "translator-url", "", "Translation service base URL")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address for translation cache")
	fs.StringVar(&keepAlive, "keep-alive", "", "Keep-alive cron schedule")
	fs.StringVar(&serverURL, "server-url", "", "Server base URL (client)")
	fs.StringVar(&localDB, "local-db", "", "Local SQLite database path (client)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Images: Images{
				Bucket:    s3Bucket,
				Endpoint:  s3Endpoint,
				PublicURL: s3PublicURL,
			},
			Local: Local{DSN: localDB},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Translator: Translator{BaseURL: translatorURL},
		Cache:      Cache{RedisAddress: redisAddress},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{KeepAliveSchedule: keepAlive},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address, "localhost" or empty
// (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
