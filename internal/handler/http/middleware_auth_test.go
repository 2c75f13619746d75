// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing header is a missing credential",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "access token required",
		},
		{
			name:           "scheme without token",
			header:         "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "access token required",
		},
		{
			name:           "wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "access token required",
		},
		{
			name:           "rejected token is an auth failure",
			header:         "Bearer forged.jwt.token",
			expectedStatus: http.StatusForbidden,
			expectedError:  "invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			req := newRequest(t, http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(router, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, errorMessage(t, rec))
		})
	}
}

func TestAuth_PassesUserIDDownstream(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Profile(gomock.Any(), testUserID).Return(models.User{UserID: testUserID, Email: "a@b.c"}, nil)

	rec := serve(router, authorized(newRequest(t, http.MethodGet, "/api/profile", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserID_MissingFromContext(t *testing.T) {
	h := &Handler{}
	rec := serve(http.HandlerFunc(h.profile), newRequest(t, http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
