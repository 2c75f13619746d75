// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the process.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops serving and frees resources.
type Server interface {
	RunServer()
	Shutdown()
}

// BackgroundJobs is the scheduler started alongside the HTTP server.
type BackgroundJobs interface {
	Run()
	Stop() context.Context
}
