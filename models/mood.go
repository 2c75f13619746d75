// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mood is an optional mood tag attached to a diary entry.
// The zero value means "no mood".
type Mood string

// The fixed set of moods an entry may carry.
const (
	MoodNone       Mood = ""
	MoodHappy      Mood = "😊"
	MoodInLove     Mood = "🥰"
	MoodSad        Mood = "😔"
	MoodPeaceful   Mood = "😌"
	MoodFrustrated Mood = "😤"
	MoodEmotional  Mood = "🥺"
	MoodInspired   Mood = "✨"
	MoodThoughtful Mood = "💭"
	MoodGrateful   Mood = "💝"
	MoodFree       Mood = "🦋"
)

// Moods lists every selectable mood in display order.
var Moods = []Mood{
	MoodHappy,
	MoodInLove,
	MoodSad,
	MoodPeaceful,
	MoodFrustrated,
	MoodEmotional,
	MoodInspired,
	MoodThoughtful,
	MoodGrateful,
	MoodFree,
}

var moodLabels = map[Mood]string{
	MoodHappy:      "Happy",
	MoodInLove:     "In Love",
	MoodSad:        "Sad",
	MoodPeaceful:   "Peaceful",
	MoodFrustrated: "Frustrated",
	MoodEmotional:  "Emotional",
	MoodInspired:   "Inspired",
	MoodThoughtful: "Thoughtful",
	MoodGrateful:   "Grateful",
	MoodFree:       "Free",
}

// Valid reports whether m is either empty or one of [Moods].
func (m Mood) Valid() bool {
	if m == MoodNone {
		return true
	}
	_, ok := moodLabels[m]
	return ok
}

// Label returns the human-readable name of the mood, or "" for an unknown or
// empty mood.
func (m Mood) Label() string {
	return moodLabels[m]
}

// String renders the mood as "<emoji> <label>".
func (m Mood) String() string {
	if label, ok := moodLabels[m]; ok {
		return string(m) + " " + label
	}
	return string(m)
}
