// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. /metrics sits outside the gzip group because
// promhttp negotiates its own compression.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withCORS)

	router.Handle("/metrics", h.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Route("/api", func(r chi.Router) {
			// routes without authorization
			r.Get("/health", h.health)
			r.Get("/version", h.getServerVersion)
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/profile", h.profile)
				r.Get("/keep-alive", h.keepAlive)
				r.Post("/upload", h.uploadPhoto)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", h.listEntries)
					r.Post("/", h.createEntry)
					r.Get("/{id}", h.getEntry)
					r.Put("/{id}", h.updateEntry)
					r.Delete("/{id}", h.deleteEntry)
					r.Post("/{id}/translate", h.translateEntry)
				})
			})
		})
	})

	return router
}
