// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-diary/internal/adapter"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSession = models.Session{UserID: 1, Token: "tok"}

func wrapAdapter(sentinel error, msg string) error {
	return fmt.Errorf("%w: %s", sentinel, msg)
}

func newTestClientEntries(t *testing.T) (ClientEntryService, *mock.MockServerAdapter) {
	t.Helper()
	srv := mock.NewMockServerAdapter(gomock.NewController(t))
	return NewClientEntryService(srv, logger.Nop()), srv
}

func TestClientEntryService_Create_UploadsPhotosFirst(t *testing.T) {
	svc, srv := newTestClientEntries(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "beach.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	gomock.InOrder(
		srv.EXPECT().UploadPhoto(ctx, "tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u models.Upload) (string, error) {
				assert.Equal(t, "beach.png", u.Filename)
				assert.Equal(t, "image/png", u.ContentType)
				assert.Equal(t, int64(9), u.Size)
				data, err := io.ReadAll(u.Body)
				require.NoError(t, err)
				assert.Equal(t, "png-bytes", string(data))
				return "https://cdn/diary-photos/1.png", nil
			},
		),
		srv.EXPECT().CreateEntry(ctx, "tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req models.CreateEntryRequest) (string, error) {
				assert.Equal(t, models.Photos{"https://cdn/diary-photos/1.png"}, req.Photos)
				return "new-id", nil
			},
		),
	)

	id, err := svc.Create(ctx, testSession, models.CreateEntryRequest{Title: "t", Content: "c"}, path, "  ")

	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
}

func TestClientEntryService_Create_MissingPhotoFile(t *testing.T) {
	svc, _ := newTestClientEntries(t)

	_, err := svc.Create(context.Background(), testSession, models.CreateEntryRequest{}, filepath.Join(t.TempDir(), "nope.jpg"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientEntryService_ErrorMapping(t *testing.T) {
	svc, srv := newTestClientEntries(t)
	ctx := context.Background()

	srv.EXPECT().UpdateEntry(ctx, "tok", "e1", gomock.Any()).Return(wrapAdapter(adapter.ErrForbidden, "entry is no longer editable"))
	srv.EXPECT().DeleteEntry(ctx, "tok", "e1").Return(wrapAdapter(adapter.ErrNotFound, "entry not found"))
	srv.EXPECT().ListEntries(ctx, "tok").Return(nil, wrapAdapter(adapter.ErrForbidden, "invalid or expired token"))
	srv.EXPECT().TranslateEntry(ctx, "tok", "e1", "ml").Return(models.Translation{}, wrapAdapter(adapter.ErrBadGateway, "translation failed"))
	srv.EXPECT().GetEntry(ctx, "tok", "e1").Return(models.EntryDetailsResponse{}, wrapAdapter(adapter.ErrInternalServerError, "internal server error"))

	assert.ErrorIs(t, svc.Update(ctx, testSession, "e1", models.UpdateEntryRequest{}), ErrEntryNotEditable)
	assert.ErrorIs(t, svc.Delete(ctx, testSession, "e1"), store.ErrEntryNotFound)

	_, err := svc.List(ctx, testSession)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = svc.Translate(ctx, testSession, "e1", "ml")
	assert.ErrorIs(t, err, ErrDependency)

	_, err = svc.Get(ctx, testSession, "e1")
	assert.ErrorIs(t, err, ErrServerRejected)
}

func TestMapAdapterError_Passthrough(t *testing.T) {
	netErr := errors.New("dial tcp: connection refused")

	assert.Nil(t, mapAdapterError(nil))
	assert.Same(t, netErr, mapAdapterError(netErr))
	assert.ErrorIs(t, mapAdapterError(wrapAdapter(adapter.ErrBadRequest, "title is required")), ErrInvalidDataProvided)
	assert.ErrorIs(t, mapAdapterError(wrapAdapter(adapter.ErrConflict, "email already registered")), store.ErrEmailAlreadyExists)
	assert.ErrorIs(t, mapAdapterError(wrapAdapter(adapter.ErrUnauthorized, "access token required")), ErrNotSignedIn)
}
