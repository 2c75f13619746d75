// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
)

// notFound answers unknown routes with a JSON error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers a known path requested with an unhandled method with 405.
// The API hides which methods a path supports, so such requests get the
// same 404 body as an unknown route.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for route")
	notFound(w, r)
}
