// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diary

import "time"

// EditWindowDays is how many calendar days after creation an entry's title
// and content may still be changed.
const EditWindowDays = 3

// IsEditable reports whether an entry created at createdAt may be edited at
// now. Both instants are reduced to calendar days in now's location; the
// entry is editable while the day difference is at most EditWindowDays.
//
// Only the creation timestamp counts. A backdated entry created today is
// editable regardless of its entry date.
func IsEditable(createdAt, now time.Time) bool {
	return DaysBetween(createdAt, now) <= EditWindowDays
}

// DaysBetween returns the number of calendar-day boundaries between from and
// to, both observed in to's location. It is negative when from is after to.
func DaysBetween(from, to time.Time) int {
	loc := to.Location()
	fy, fm, fd := from.In(loc).Date()
	ty, tm, td := to.Date()

	// Midnight UTC of each civil date keeps DST shifts out of the division.
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// EditableUntil returns the last instant at which an entry created at
// createdAt is still editable, with calendar days counted in loc. It agrees
// with IsEditable for any now observed in loc.
func EditableUntil(createdAt time.Time, loc *time.Location) time.Time {
	y, m, d := createdAt.In(loc).Date()
	return time.Date(y, m, d+EditWindowDays+1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
}
