// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
	"github.com/go-chi/chi/v5"
)

// listEntries returns the user's entries newest first. Filter query
// parameters (q, mood, date_mode, day, month, start, end) are optional.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.EntryService.ListEntries(r.Context(), userID, filterFromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, "*Handler.listEntries", err, "")
		return
	}

	response := make([]models.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, models.NewEntryResponse(entry))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func filterFromQuery(query url.Values) models.FilterSpec {
	return models.FilterSpec{
		Term:     query.Get("q"),
		Mood:     models.Mood(query.Get("mood")),
		DateMode: models.DateMode(query.Get("date_mode")),
		Day:      query.Get("day"),
		Month:    query.Get("month"),
		Start:    query.Get("start"),
		End:      query.Get("end"),
	}
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	entry, err := h.services.EntryService.GetEntry(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getEntry", err, "")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	entry, err := h.services.EntryService.CreateEntry(r.Context(), userID, req)
	if err != nil {
		if missingField(err, validators.ErrEmptyTitle, validators.ErrEmptyContent) {
			log.Warn().Err(err).Str("func", "*Handler.createEntry").Send()
			utils.WriteError(w, app.MsgTitleContentNeeded, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, "*Handler.createEntry", err, "")
		return
	}

	log.Debug().Str("entry_id", entry.ID).Msg("entry created")

	utils.WriteJSON(w, models.CreateEntryResponse{ID: entry.ID, Message: app.MsgEntryCreated}, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.EntryService.UpdateEntry(r.Context(), userID, chi.URLParam(r, "id"), req)
	if err != nil {
		if missingField(err, validators.ErrEmptyTitle, validators.ErrEmptyContent) {
			log.Warn().Err(err).Str("func", "*Handler.updateEntry").Send()
			utils.WriteError(w, app.MsgTitleContentNeeded, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, "*Handler.updateEntry", err, "")
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true, Message: app.MsgEntryUpdated}, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.services.EntryService.DeleteEntry(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteEntry", err, "")
		return
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true, Message: app.MsgEntryDeleted}, http.StatusOK)
}

// translateEntry accepts an optional {"target_language": "..."} body. An
// empty body selects the configured default language.
func (h *Handler) translateEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.translateEntry").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	translation, err := h.services.TranslationService.TranslateEntry(r.Context(), userID, chi.URLParam(r, "id"), req.TargetLanguage)
	if err != nil {
		writeServiceError(w, r, "*Handler.translateEntry", err, app.MsgTranslationFailed)
		return
	}

	utils.WriteJSON(w, translation, http.StatusOK)
}
