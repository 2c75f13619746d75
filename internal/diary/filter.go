// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diary

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/models"
)

// Matcher reports whether a single entry satisfies a compiled filter.
type Matcher func(models.Entry) bool

// Filter returns the entries matching spec, in their original order.
//
// The input slice and its elements are never modified; the result is always
// a fresh, non-nil slice. A malformed spec is rejected with a
// *ValidationError before any entry is evaluated.
func Filter(entries []models.Entry, spec models.FilterSpec) ([]models.Entry, error) {
	match, err := CompileFilter(spec)
	if err != nil {
		return nil, err
	}
	return Apply(entries, match), nil
}

// Apply returns the entries accepted by match, in order, as a new slice.
func Apply(entries []models.Entry, match Matcher) []models.Entry {
	result := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if match(e) {
			result = append(result, e)
		}
	}
	return result
}

// CompileFilter validates spec and returns a predicate implementing it.
//
// Term is a case-insensitive substring match on title or content. Mood is an
// equality match. The date dimension depends on DateMode:
//   - day:   entry date equals Day (YYYY-MM-DD);
//   - month: entry date lies in Month (YYYY-MM, month 1..12);
//   - range: Start <= entry date <= End, both inclusive;
//   - none or "": no date filtering.
//
// A date mode whose value is still empty (no day picked, a range missing a
// bound) filters nothing. A range with Start after End matches nothing.
func CompileFilter(spec models.FilterSpec) (Matcher, error) {
	if !spec.Mood.Valid() {
		return nil, invalid("mood", string(spec.Mood), "unknown mood")
	}

	inDate, err := compileDate(spec)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(spec.Term)
	mood := spec.Mood

	return func(e models.Entry) bool {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Title), term) &&
			!strings.Contains(strings.ToLower(e.Content), term) {
			return false
		}
		if mood != models.MoodNone && e.Mood != mood {
			return false
		}
		return inDate(e.EntryDate)
	}, nil
}

func anyDate(models.Date) bool { return true }

func noDate(models.Date) bool { return false }

func compileDate(spec models.FilterSpec) (func(models.Date) bool, error) {
	switch spec.DateMode {
	case "", models.DateModeNone:
		return anyDate, nil

	case models.DateModeDay:
		if spec.Day == "" {
			return anyDate, nil
		}
		day, err := models.ParseDate(spec.Day)
		if err != nil {
			return nil, invalid("day", spec.Day, "expected YYYY-MM-DD")
		}
		return func(d models.Date) bool {
			return d.Equal(day.Time)
		}, nil

	case models.DateModeMonth:
		if spec.Month == "" {
			return anyDate, nil
		}
		// time.Month is 1-indexed like the external YYYY-MM form,
		// so the parsed value is compared as is.
		m, err := time.Parse(models.MonthLayout, spec.Month)
		if err != nil {
			return nil, invalid("month", spec.Month, "expected YYYY-MM")
		}
		year, month := m.Year(), m.Month()
		return func(d models.Date) bool {
			return d.Year() == year && d.Month() == month
		}, nil

	case models.DateModeRange:
		var start, end models.Date
		var err error
		if spec.Start != "" {
			if start, err = models.ParseDate(spec.Start); err != nil {
				return nil, invalid("start", spec.Start, "expected YYYY-MM-DD")
			}
		}
		if spec.End != "" {
			if end, err = models.ParseDate(spec.End); err != nil {
				return nil, invalid("end", spec.End, "expected YYYY-MM-DD")
			}
		}
		if spec.Start == "" || spec.End == "" {
			return anyDate, nil
		}
		if start.After(end.Time) {
			return noDate, nil
		}
		last := endOfDay(end.Time)
		return func(d models.Date) bool {
			return !d.Before(start.Time) && !d.After(last)
		}, nil

	default:
		return nil, invalid("date_mode", string(spec.DateMode), "expected none, day, month or range")
	}
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}
