// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateEntryRequest is the body of POST /api/entries.
// A nil EntryDate means today.
type CreateEntryRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	EntryDate *Date  `json:"entry_date,omitempty"`
	Photos    Photos `json:"photos,omitempty"`
	Mood      Mood   `json:"mood_emoji,omitempty"`
}

// UpdateEntryRequest is the body of PUT /api/entries/{id}.
type UpdateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateEntryResponse acknowledges a created entry.
type CreateEntryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// StatusResponse acknowledges an update or delete.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EntryResponse is the wire form of an entry. UpdatedAt always carries a
// value and falls back to CreatedAt.
type EntryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	EntryDate Date      `json:"entry_date"`
	Photos    Photos    `json:"photos"`
	Mood      Mood      `json:"mood_emoji"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntryResponse converts e into its wire form.
func NewEntryResponse(e Entry) EntryResponse {
	photos := e.Photos
	if photos == nil {
		photos = Photos{}
	}
	return EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		EntryDate: e.EntryDate,
		Photos:    photos,
		Mood:      e.Mood,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.LastModified(),
	}
}

// EntryDetailsResponse is returned by GET /api/entries/{id}.
type EntryDetailsResponse struct {
	EntryResponse
	UserID        int64     `json:"user_id"`
	Editable      bool      `json:"editable"`
	EditableUntil time.Time `json:"editable_until"`
}

// TranslateRequest is the body of POST /api/entries/{id}/translate.
type TranslateRequest struct {
	TargetLanguage string `json:"target_language"`
}

// Translation is a translated copy of an entry's text.
type Translation struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	TargetLanguage string `json:"target_language"`
}

// UploadResponse is returned by POST /api/upload.
type UploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// KeepAliveResponse is returned by GET /api/keep-alive.
type KeepAliveResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UserCount int64     `json:"user_count"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
