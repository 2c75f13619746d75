// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DateMode selects which date dimension of a [FilterSpec] is active.
type DateMode string

const (
	DateModeNone  DateMode = "none"
	DateModeDay   DateMode = "day"
	DateModeMonth DateMode = "month"
	DateModeRange DateMode = "range"
)

// FilterSpec is the combined search criteria applied to a list of entries.
// All non-empty dimensions are combined with logical AND.
//
// Dates travel as strings in their external representation (YYYY-MM-DD for
// Day, Start and End; YYYY-MM with a 1-indexed month for Month) and are
// validated when the filter is compiled.
type FilterSpec struct {
	Term     string   `json:"q,omitempty"`
	Mood     Mood     `json:"mood,omitempty"`
	DateMode DateMode `json:"date_mode,omitempty"`
	Day      string   `json:"day,omitempty"`
	Month    string   `json:"month,omitempty"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
}

// IsZero reports whether the spec filters nothing at all.
func (f FilterSpec) IsZero() bool {
	return f == FilterSpec{}
}
