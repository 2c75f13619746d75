// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// DefaultTargetLanguage is used when neither the request nor the
// configuration names a target language.
const DefaultTargetLanguage = "ml"

type translationService struct {
	entries         store.EntryRepository
	translator      adapter.Translator
	defaultLanguage string
	logger          *logger.Logger
}

func NewTranslationService(entries store.EntryRepository, translator adapter.Translator, cfg config.Translator, logger *logger.Logger) TranslationService {
	lang := cfg.DefaultLanguage
	if lang == "" {
		lang = DefaultTargetLanguage
	}
	return &translationService{entries: entries, translator: translator, defaultLanguage: lang, logger: logger}
}

// TranslateEntry translates title and content of the caller's entry. The
// stored entry is never modified.
func (s *translationService) TranslateEntry(ctx context.Context, userID int64, entryID, targetLanguage string) (models.Translation, error) {
	log := logger.FromContext(ctx)

	lang := strings.TrimSpace(targetLanguage)
	if lang == "" {
		lang = s.defaultLanguage
	}

	entry, err := s.entries.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.Translation{}, fmt.Errorf("get entry for translation: %w", err)
	}

	if s.translator == nil {
		return models.Translation{}, fmt.Errorf("%w: %w", ErrDependency, adapter.ErrTranslationFailed)
	}

	title, err := s.translator.Translate(ctx, entry.Title, lang)
	if err != nil {
		log.Err(err).Str("entry_id", entryID).Str("lang", lang).Msg("title translation failed")
		return models.Translation{}, fmt.Errorf("%w: %w", ErrDependency, err)
	}

	content, err := s.translator.Translate(ctx, entry.Content, lang)
	if err != nil {
		log.Err(err).Str("entry_id", entryID).Str("lang", lang).Msg("content translation failed")
		return models.Translation{}, fmt.Errorf("%w: %w", ErrDependency, err)
	}

	return models.Translation{Title: title, Content: content, TargetLanguage: lang}, nil
}
