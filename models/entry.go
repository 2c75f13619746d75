// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Entry is a single diary record authored by one user for one calendar date.
type Entry struct {
	// ID is an opaque UUIDv7 string, unique per store.
	ID string `json:"id"`

	// UserID is the owner. Only the owner may read, edit or delete the entry.
	UserID int64 `json:"user_id,omitempty"`

	// Title and Content are required and stored trimmed.
	Title   string `json:"title"`
	Content string `json:"content"`

	// EntryDate is the calendar day the entry is about. It is independent of
	// CreatedAt and may be backdated.
	EntryDate Date `json:"entry_date"`

	// Photos holds hosted image URLs in display order.
	Photos Photos `json:"photos"`

	Mood Mood `json:"mood_emoji"`

	// CreatedAt gates the edit window.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is zero until the first edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Entry.
func (e Entry) TableName() string {
	return "diary_entries"
}

// LastModified returns UpdatedAt, falling back to CreatedAt for entries that
// were never edited.
func (e Entry) LastModified() time.Time {
	if e.UpdatedAt.IsZero() {
		return e.CreatedAt
	}
	return e.UpdatedAt
}

// Photos is an ordered list of photo URLs persisted as a JSON array.
type Photos []string

// Scan implements sql.Scanner.
func (p *Photos) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = Photos{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Photos", src)
	}

	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		return fmt.Errorf("error decoding photos: %w", err)
	}
	if urls == nil {
		urls = []string{}
	}
	*p = urls
	return nil
}

// Value implements driver.Valuer.
func (p Photos) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
