// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client-side record of a signed-in user. It is persisted in
// the local database and its Token is passed explicitly to every server call.
type Session struct {
	UserID    int64
	Email     string
	Username  string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Active reports whether the session holds a token that has not expired at now.
// A zero ExpiresAt means the expiry is unknown and the token is trusted until
// the server rejects it.
func (s Session) Active(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
