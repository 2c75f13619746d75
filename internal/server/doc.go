// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the diary HTTP server and the background workers.
//
// It handles startup, signal handling and graceful shutdown: on SIGINT,
// SIGTERM or SIGQUIT the HTTP server drains in-flight requests and the
// scheduler waits for running jobs.
package server
