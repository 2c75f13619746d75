// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/handler"
	httpHandler "github.com/MKhiriev/go-diary/internal/handler/http"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobs struct {
	started bool
	stopped bool
}

func (f *fakeJobs) Run() { f.started = true }

func (f *fakeJobs) Stop() context.Context {
	f.stopped = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, config.Server{}, logger.Nop())}
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	srv, err := NewServer(testHandlers(), nil, config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	httpSrv := srv.(*server).httpServer.server
	assert.Equal(t, 5*time.Second, httpSrv.ReadTimeout)
	assert.Equal(t, 5*time.Second, httpSrv.WriteTimeout)
	assert.Equal(t, 10*time.Second, httpSrv.IdleTimeout)
}

func TestNewHTTPServer_DefaultTimeout(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Equal(t, defaultRequestTimeout, s.server.ReadHeaderTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	jobs := &fakeJobs{}
	srv, err := NewServer(testHandlers(), jobs, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, jobs.started)
	assert.True(t, jobs.stopped)
}

func TestServer_RunStopsWhenListenerFails(t *testing.T) {
	srv, err := NewServer(testHandlers(), nil, config.Server{HTTPAddress: "256.0.0.1:bad"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.(*server).run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after listen failure")
	}
}
