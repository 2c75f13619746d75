// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
)

type googleTranslator struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGoogleTranslator uses the public translate_a/single endpoint with
// automatic source language detection.
func NewGoogleTranslator(cfg config.Translator, log *logger.Logger) Translator {
	return &googleTranslator{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		logger: log,
	}
}

func (g *googleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     targetLanguage,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		g.logger.Err(err).Str("func", "*googleTranslator.Translate").Msg("translate request failed")
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).Str("func", "*googleTranslator.Translate").Msg("translate request rejected")
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	translated, err := parseGoogleTranslation(resp.Body())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}
	return translated, nil
}

// parseGoogleTranslation concatenates the translated segments found at
// payload[0][i][0].
func parseGoogleTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode translation: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty translation payload", ErrUnexpectedResponse)
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translation segments: %w", err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no translated segments", ErrUnexpectedResponse)
	}
	return sb.String(), nil
}
