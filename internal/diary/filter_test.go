// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diary

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func sampleEntries(t *testing.T) []models.Entry {
	return []models.Entry{
		{ID: "a", Title: "Morning Run", Content: "Ran 5k by the river", EntryDate: date(t, "2024-01-05"), Mood: models.MoodHappy, Photos: models.Photos{"https://img/1.png"}},
		{ID: "b", Title: "Rainy day", Content: "Stayed in and read", EntryDate: date(t, "2024-01-31"), Mood: models.MoodPeaceful},
		{ID: "c", Title: "Exam", Content: "Did not go well", EntryDate: date(t, "2024-02-10"), Mood: models.MoodSad},
		{ID: "d", Title: "Trip", Content: "RIVER rafting", EntryDate: date(t, "2024-02-11")},
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter_EmptySpecIsIdentity(t *testing.T) {
	entries := sampleEntries(t)

	got, err := Filter(entries, models.FilterSpec{})

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestFilter_EmptyInput(t *testing.T) {
	got, err := Filter(nil, models.FilterSpec{Term: "x"})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_NonMatchingTerm(t *testing.T) {
	got, err := Filter(sampleEntries(t), models.FilterSpec{Term: "zzz-not-there"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilter_Dimensions(t *testing.T) {
	tests := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{name: "term matches title or content case-insensitively", spec: models.FilterSpec{Term: "River"}, want: []string{"a", "d"}},
		{name: "term matches title", spec: models.FilterSpec{Term: "exam"}, want: []string{"c"}},
		{name: "mood equality", spec: models.FilterSpec{Mood: models.MoodSad}, want: []string{"c"}},
		{name: "day", spec: models.FilterSpec{DateMode: models.DateModeDay, Day: "2024-01-31"}, want: []string{"b"}},
		{name: "month", spec: models.FilterSpec{DateMode: models.DateModeMonth, Month: "2024-02"}, want: []string{"c", "d"}},
		{name: "range inclusive", spec: models.FilterSpec{DateMode: models.DateModeRange, Start: "2024-01-31", End: "2024-02-10"}, want: []string{"b", "c"}},
		{name: "range start equals end", spec: models.FilterSpec{DateMode: models.DateModeRange, Start: "2024-02-10", End: "2024-02-10"}, want: []string{"c"}},
		{name: "range start after end", spec: models.FilterSpec{DateMode: models.DateModeRange, Start: "2024-02-11", End: "2024-01-01"}, want: []string{}},
		{name: "none mode ignores date fields", spec: models.FilterSpec{DateMode: models.DateModeNone, Day: "1999-01-01"}, want: []string{"a", "b", "c", "d"}},
		{name: "day mode without a day", spec: models.FilterSpec{DateMode: models.DateModeDay}, want: []string{"a", "b", "c", "d"}},
		{name: "range missing end", spec: models.FilterSpec{DateMode: models.DateModeRange, Start: "2024-02-01"}, want: []string{"a", "b", "c", "d"}},
		{name: "dimensions combine with AND", spec: models.FilterSpec{Term: "river", Mood: models.MoodHappy, DateMode: models.DateModeMonth, Month: "2024-01"}, want: []string{"a"}},
		{name: "AND with disjoint dimensions", spec: models.FilterSpec{Term: "river", DateMode: models.DateModeMonth, Month: "2024-03"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(sampleEntries(t), tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_MonthScenario(t *testing.T) {
	entries := []models.Entry{
		{ID: "jan", EntryDate: date(t, "2024-01-05")},
		{ID: "feb", EntryDate: date(t, "2024-02-10")},
	}

	got, err := Filter(entries, models.FilterSpec{DateMode: models.DateModeMonth, Month: "2024-01"})

	require.NoError(t, err)
	assert.Equal(t, []string{"jan"}, ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	specs := []models.FilterSpec{
		{Term: "river"},
		{Mood: models.MoodPeaceful},
		{DateMode: models.DateModeRange, Start: "2024-01-01", End: "2024-01-31"},
	}

	for _, spec := range specs {
		once, err := Filter(sampleEntries(t), spec)
		require.NoError(t, err)
		twice, err := Filter(once, spec)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	entries := sampleEntries(t)
	snapshot := sampleEntries(t)

	got, err := Filter(entries, models.FilterSpec{Term: "river"})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	got[0].Title = "changed"
	assert.Equal(t, snapshot, entries)
}

func TestFilter_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		spec  models.FilterSpec
		field string
	}{
		{name: "malformed day", spec: models.FilterSpec{DateMode: models.DateModeDay, Day: "05/01/2024"}, field: "day"},
		{name: "malformed month", spec: models.FilterSpec{DateMode: models.DateModeMonth, Month: "2024-13"}, field: "month"},
		{name: "malformed start", spec: models.FilterSpec{DateMode: models.DateModeRange, Start: "yesterday", End: "2024-01-01"}, field: "start"},
		{name: "malformed end even without start", spec: models.FilterSpec{DateMode: models.DateModeRange, End: "2024-02-30"}, field: "end"},
		{name: "unknown date mode", spec: models.FilterSpec{DateMode: "week"}, field: "date_mode"},
		{name: "unknown mood", spec: models.FilterSpec{Mood: "🤖"}, field: "mood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(sampleEntries(t), tt.spec)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestCompileFilter_Reusable(t *testing.T) {
	match, err := CompileFilter(models.FilterSpec{DateMode: models.DateModeDay, Day: "2024-01-05"})
	require.NoError(t, err)

	assert.True(t, match(models.Entry{EntryDate: date(t, "2024-01-05")}))
	assert.False(t, match(models.Entry{EntryDate: date(t, "2024-01-06")}))
	assert.True(t, match(models.Entry{EntryDate: models.NewDate(time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC))}))
}
