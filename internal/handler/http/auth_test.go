// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var alice = models.User{UserID: testUserID, Email: "alice@example.com", Username: "alice"}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

func TestRegister_Success(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.RegisterRequest{Email: "Alice@Example.com", Password: "secret1", Username: "alice"}

	m.auth.EXPECT().Register(gomock.Any(), req).Return(alice, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "signed"}, nil)

	rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/register", req))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed", body.Token)
	assert.Equal(t, alice.Email, body.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{"duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict, "email already registered"},
		{"duplicate username", fmt.Errorf("create user: %w", store.ErrUsernameAlreadyExists), http.StatusConflict, "username already taken"},
		{"missing field", invalidData(validators.ErrEmptyUsername), http.StatusBadRequest, "all fields are required"},
		{"short password", invalidData(validators.ErrPasswordTooShort), http.StatusBadRequest, "password must be at least 6 characters long"},
		{"malformed email", invalidData(validators.ErrInvalidEmail), http.StatusBadRequest, "invalid email"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/register", models.RegisterRequest{}))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, errorMessage(t, rec))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/register", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", errorMessage(t, rec))
}

func TestLogin_Success(t *testing.T) {
	router, m := newTestRouter(t)
	req := models.LoginRequest{Email: "alice@example.com", Password: "secret1"}

	m.auth.EXPECT().Login(gomock.Any(), req).Return(alice, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{SignedString: "signed"}, nil)

	rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/login", req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, "invalid email or password"},
		{"missing password", invalidData(validators.ErrEmptyPassword), http.StatusBadRequest, "email and password are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{}))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, errorMessage(t, rec))
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(alice, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), alice).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(router, newRequest(t, http.MethodPost, "/api/auth/login", models.LoginRequest{}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestProfile(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Profile(gomock.Any(), testUserID).Return(models.User{
		UserID: testUserID, Email: "alice@example.com", Username: "alice", PasswordHash: "$2a$hash",
	}, nil)

	rec := serve(router, authorized(newRequest(t, http.MethodGet, "/api/profile", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, "alice", body.Username)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
}

func TestProfile_UserGone(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Profile(gomock.Any(), testUserID).Return(models.User{}, store.ErrNoUserWasFound)

	rec := serve(router, authorized(newRequest(t, http.MethodGet, "/api/profile", nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", errorMessage(t, rec))
}
