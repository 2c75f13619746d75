// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

const (
	photoFormField = "photo"

	// maxUploadRequestBytes caps the whole multipart body. The photo size
	// limit itself is enforced by the upload service.
	maxUploadRequestBytes = 16 << 20
	maxUploadMemory       = 8 << 20
)

func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestBytes)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Err(err).Str("func", "*Handler.uploadPhoto").Send()
			utils.WriteError(w, app.MsgPhotoTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Warn().Err(err).Str("func", "*Handler.uploadPhoto").Msg("malformed multipart body")
		utils.WriteError(w, app.MsgNoFileUploaded, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(photoFormField)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.uploadPhoto").Send()
		utils.WriteError(w, app.MsgNoFileUploaded, http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.services.UploadService.UploadPhoto(r.Context(), models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, r, "*Handler.uploadPhoto", err, app.MsgPhotoUploadFailed)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{URL: url, Message: app.MsgPhotoUploaded}, http.StatusOK)
}
