// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the diary server.
//
// Routes live under /api and are served by a chi router. Requests pass
// through trace-id, access logging, Prometheus metrics, CORS and gzip
// middleware; everything except register, login, health and version also
// requires a bearer token checked by the auth middleware.
package http
