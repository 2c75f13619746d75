// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "set with WithUserID", ctx: WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "zero id is still present", ctx: WithUserID(context.Background(), 0), wantID: 0, wantOK: true},
		{name: "missing", ctx: context.Background(), wantID: 0, wantOK: false},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42"), wantID: 0, wantOK: false},
		{name: "other key", ctx: context.WithValue(context.Background(), contextKey("other"), int64(7)), wantID: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUserIDCtxKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
