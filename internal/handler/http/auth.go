// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		if missingField(err, validators.ErrEmptyEmail, validators.ErrEmptyUsername, validators.ErrEmptyPassword) {
			log.Warn().Err(err).Str("func", "*Handler.register").Send()
			utils.WriteError(w, app.MsgAllFieldsRequired, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, "*Handler.register", err, "")
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		if missingField(err, validators.ErrEmptyEmail, validators.ErrEmptyPassword) {
			log.Warn().Err(err).Str("func", "*Handler.login").Send()
			utils.WriteError(w, app.MsgEmailPasswordNeeded, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, "*Handler.login", err, "")
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, user, http.StatusOK)
}

// respondWithToken issues a token for user and returns it both in the body
// and in the Authorization header.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, "*Handler.respondWithToken", err, "")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user.Public()}, status)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.profile", err, "")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// userID reads the id stored by the auth middleware. It answers 401 itself
// when the id is missing.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
