// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a diary account.
type User struct {
	UserID int64 `json:"id"`

	// Email is unique and always stored lower-cased.
	Email string `json:"email"`

	// Username is unique and shown in the dashboard greeting.
	Username string `json:"username"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted or returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	AvatarURL string `json:"avatar_url"`

	CreatedAt time.Time  `json:"created_at,omitzero"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u with credential fields cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}
