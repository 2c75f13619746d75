// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing message strings shared by the diary
// HTTP handlers and the client that interprets their responses.
package app

const (
	MsgInvalidDataProvided = "invalid data provided"
	MsgAllFieldsRequired   = "all fields are required"
	MsgPasswordTooShort    = "password must be at least 6 characters long"
	MsgEmailPasswordNeeded = "email and password are required"
	MsgTitleContentNeeded  = "title and content are required"
	MsgInvalidEntryID      = "invalid entry id"
	MsgInvalidFilter       = "invalid filter"

	// MsgInvalidLoginPassword deliberately does not say which half was wrong.
	MsgInvalidLoginPassword = "invalid email or password"

	MsgAccessTokenRequired     = "access token required"
	MsgTokenIsExpiredOrInvalid = "invalid or expired token"

	MsgEmailAlreadyRegistered = "email already registered"
	MsgUsernameAlreadyTaken   = "username already taken"

	MsgUserNotFound       = "user not found"
	MsgEntryNotFound      = "entry not found"
	MsgRouteNotFound      = "route not found"
	MsgEntryNotEditable   = "entry is no longer editable"
	MsgNoFileUploaded     = "no file uploaded"
	MsgPhotoTooLarge      = "photo exceeds the upload size limit"
	MsgUnsupportedPhoto   = "only jpg, jpeg, png and gif images are allowed"
	MsgPhotoUploadFailed  = "photo upload failed"
	MsgTranslationFailed  = "translation failed"
	MsgKeepAliveFailed    = "keep-alive failed"
	MsgInternalServerErr  = "internal server error"
	MsgEntryCreated       = "entry created successfully"
	MsgEntryUpdated       = "entry updated successfully"
	MsgEntryDeleted       = "entry deleted successfully"
	MsgPhotoUploaded      = "photo uploaded successfully"
	MsgStatusAlive        = "alive"
	MsgStatusOK           = "OK"
	MsgVersionUnspecified = "version is not specified"
)
