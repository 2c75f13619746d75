// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 1, 5, 22, 10, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(raw))

	var fromDay Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-05"`), &fromDay))
	assert.Equal(t, d, fromDay)

	var fromTimestamp Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-05T10:00:00Z"`), &fromTimestamp))
	assert.Equal(t, d, fromTimestamp)

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"05.01.2024"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`20240105`), &bad))
}

func TestNewDate_KeepsCivilDateOfLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	d := NewDate(time.Date(2024, 1, 6, 1, 0, 0, 0, kolkata))

	assert.Equal(t, "2024-01-06", d.String())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-10", d.String())

	require.NoError(t, d.Scan("2024-02-11"))
	assert.Equal(t, "2024-02-11", d.String())

	assert.Error(t, d.Scan(42))
}

func TestMood_Valid(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, m.Valid(), m)
		assert.NotEmpty(t, m.Label())
	}
	assert.True(t, MoodNone.Valid())
	assert.False(t, Mood("🤖").Valid())
	assert.Equal(t, "🦋 Free", MoodFree.String())
}

func TestPhotos_ScanValue(t *testing.T) {
	in := Photos{"https://img/a.png", "https://img/b.png"}
	v, err := in.Value()
	require.NoError(t, err)

	var out Photos
	require.NoError(t, out.Scan([]byte(v.(string))))
	assert.Equal(t, in, out)

	require.NoError(t, out.Scan(nil))
	assert.Equal(t, Photos{}, out)

	v, err = Photos(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestNewEntryResponse_UpdatedAtFallsBack(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	resp := NewEntryResponse(Entry{ID: "x", CreatedAt: created})

	assert.Equal(t, created, resp.UpdatedAt)
	assert.Equal(t, Photos{}, resp.Photos)
}
