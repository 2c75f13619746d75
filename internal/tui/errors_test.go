// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "server down",
			err:  errors.New(`Post "http://localhost:8080/api/auth/login": dial tcp 127.0.0.1:8080: connect: connection refused`),
			want: "No network connection or the server is unavailable",
		},
		{
			name: "wrong password",
			err:  fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrWrongPassword),
			want: "Invalid email or password",
		},
		{
			name: "duplicate username",
			err:  fmt.Errorf("%w: %w", service.ErrRegisterOnServer, store.ErrUsernameAlreadyExists),
			want: "This username is already taken",
		},
		{name: "unknown", err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "a long...", fitText("a long title", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
