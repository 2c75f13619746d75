// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: app.MsgStatusOK, Timestamp: time.Now().UTC()}, http.StatusOK)
}

// keepAlive touches the database so hosted instances are not suspended for
// inactivity. The scheduled worker calls the same service.
func (h *Handler) keepAlive(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.KeepAliveService.Ping(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.keepAlive", err, app.MsgKeepAliveFailed)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
