// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST implementation of [ServerAdapter]
// rooted at adapterCfg.HTTPAddress. A scheme-less address is treated as http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts credentials and reads the token from the body, falling
// back to the Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if result.Token == "" {
		result.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
	}

	return result, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context, token string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx, token).
		SetResult(&user).
		Get("/api/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, token string) ([]models.Entry, error) {
	var entries []models.Entry

	resp, err := h.authedRequest(ctx, token).
		SetResult(&entries).
		Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, token, id string) (models.EntryDetailsResponse, error) {
	var entry models.EntryDetailsResponse

	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", id).
		SetResult(&entry).
		Get("/api/entries/{id}")
	if err != nil {
		return models.EntryDetailsResponse{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntryDetailsResponse{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, token string, req models.CreateEntryRequest) (string, error) {
	var created models.CreateEntryResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/entries")
	if err != nil {
		return "", fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: empty entry id", ErrUnexpectedResponse)
	}

	return created.ID, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, token, id string, req models.UpdateEntryRequest) error {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		Put("/api/entries/{id}")
	if err != nil {
		return fmt.Errorf("update entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, token, id string) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", id).
		Delete("/api/entries/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) TranslateEntry(ctx context.Context, token, id, lang string) (models.Translation, error) {
	var translation models.Translation

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.TranslateRequest{TargetLanguage: lang}).
		SetResult(&translation).
		Post("/api/entries/{id}/translate")
	if err != nil {
		return models.Translation{}, fmt.Errorf("translate entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Translation{}, err
	}

	return translation, nil
}

func (h *httpServerAdapter) UploadPhoto(ctx context.Context, token string, upload models.Upload) (string, error) {
	var uploaded models.UploadResponse

	resp, err := h.authedRequest(ctx, token).
		SetMultipartField("photo", upload.Filename, upload.ContentType, upload.Body).
		SetResult(&uploaded).
		Post("/api/upload")
	if err != nil {
		return "", fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if uploaded.URL == "" {
		return "", fmt.Errorf("%w: empty photo url", ErrUnexpectedResponse)
	}

	h.logger.Debug().Str("func", "httpServerAdapter.UploadPhoto").Str("url", uploaded.URL).Msg("photo uploaded")
	return uploaded.URL, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token))
}
