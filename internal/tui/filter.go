// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type filterField int

const (
	filterTerm filterField = iota
	filterMood
	filterMode
	filterDay
	filterMonth
	filterStart
	filterEnd
)

var dateModes = []models.DateMode{
	models.DateModeNone,
	models.DateModeDay,
	models.DateModeMonth,
	models.DateModeRange,
}

// filterModel is the filter panel. Mood and date mode are pickers cycled
// with left/right; the remaining fields are text inputs.
type filterModel struct {
	inputs  map[filterField]*textinput.Model
	moodIdx int // 0 is "any mood", i > 0 is models.Moods[i-1]
	modeIdx int
	focus   filterField
	errMsg  string
}

func newFilterModel(spec models.FilterSpec) filterModel {
	newInput := func(placeholder string, limit int) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 30
		return &in
	}

	m := filterModel{
		inputs: map[filterField]*textinput.Model{
			filterTerm:  newInput("words in title or content", 100),
			filterDay:   newInput(models.DateLayout, 10),
			filterMonth: newInput(models.MonthLayout, 7),
			filterStart: newInput(models.DateLayout, 10),
			filterEnd:   newInput(models.DateLayout, 10),
		},
	}

	m.inputs[filterTerm].SetValue(spec.Term)
	m.inputs[filterDay].SetValue(spec.Day)
	m.inputs[filterMonth].SetValue(spec.Month)
	m.inputs[filterStart].SetValue(spec.Start)
	m.inputs[filterEnd].SetValue(spec.End)

	for i, mood := range models.Moods {
		if mood == spec.Mood {
			m.moodIdx = i + 1
		}
	}
	for i, mode := range dateModes {
		if mode == spec.DateMode {
			m.modeIdx = i
		}
	}

	m.setFocus(filterTerm)
	return m
}

func (m filterModel) mood() models.Mood {
	if m.moodIdx == 0 {
		return models.MoodNone
	}
	return models.Moods[m.moodIdx-1]
}

func (m filterModel) mode() models.DateMode {
	return dateModes[m.modeIdx]
}

// fields lists the fields visible for the selected date mode, in tab order.
func (m filterModel) fields() []filterField {
	fields := []filterField{filterTerm, filterMood, filterMode}
	switch m.mode() {
	case models.DateModeDay:
		fields = append(fields, filterDay)
	case models.DateModeMonth:
		fields = append(fields, filterMonth)
	case models.DateModeRange:
		fields = append(fields, filterStart, filterEnd)
	}
	return fields
}

func (m *filterModel) setFocus(field filterField) {
	for f, in := range m.inputs {
		if f == field {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	m.focus = field
}

func (m *filterModel) move(step int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(fields)) % len(fields)
	m.setFocus(fields[idx])
}

// cycle changes the picker under focus. It reports false when the focused
// field is a text input.
func (m *filterModel) cycle(step int) bool {
	switch m.focus {
	case filterMood:
		n := len(models.Moods) + 1
		m.moodIdx = (m.moodIdx + step + n) % n
	case filterMode:
		n := len(dateModes)
		m.modeIdx = (m.modeIdx + step + n) % n
	default:
		return false
	}
	return true
}

// spec builds the filter. Date values of inactive modes are left out.
func (m filterModel) spec() models.FilterSpec {
	spec := models.FilterSpec{
		Term: strings.TrimSpace(m.inputs[filterTerm].Value()),
		Mood: m.mood(),
	}

	switch mode := m.mode(); mode {
	case models.DateModeDay:
		spec.DateMode = mode
		spec.Day = strings.TrimSpace(m.inputs[filterDay].Value())
	case models.DateModeMonth:
		spec.DateMode = mode
		spec.Month = strings.TrimSpace(m.inputs[filterMonth].Value())
	case models.DateModeRange:
		spec.DateMode = mode
		spec.Start = strings.TrimSpace(m.inputs[filterStart].Value())
		spec.End = strings.TrimSpace(m.inputs[filterEnd].Value())
	}
	return spec
}

func (m filterModel) View() string {
	var b strings.Builder

	row := func(field filterField, label, value string) {
		cursor := "  "
		if m.focus == field {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-10s │ %s\n", cursor, label, value))
	}

	row(filterTerm, "Text", "["+m.inputs[filterTerm].View()+"]")

	mood := "any"
	if m.moodIdx > 0 {
		mood = m.mood().String()
	}
	row(filterMood, "Mood", "‹ "+mood+" ›")
	row(filterMode, "Date", "‹ "+dateModeLabel(m.mode())+" ›")

	switch m.mode() {
	case models.DateModeDay:
		row(filterDay, "Day", "["+m.inputs[filterDay].View()+"]")
	case models.DateModeMonth:
		row(filterMonth, "Month", "["+m.inputs[filterMonth].View()+"]")
	case models.DateModeRange:
		row(filterStart, "From", "["+m.inputs[filterStart].View()+"]")
		row(filterEnd, "To", "["+m.inputs[filterEnd].View()+"]")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("FILTER ENTRIES", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: change │ enter: apply │ ctrl+x: clear all │ esc: back")
}

func dateModeLabel(mode models.DateMode) string {
	switch mode {
	case models.DateModeDay:
		return "single day"
	case models.DateModeMonth:
		return "month"
	case models.DateModeRange:
		return "date range"
	default:
		return "any date"
	}
}

// filterSummary describes the active filter in one line.
func filterSummary(spec models.FilterSpec) string {
	var parts []string

	if spec.Term != "" {
		parts = append(parts, fmt.Sprintf("text %q", spec.Term))
	}
	if spec.Mood != models.MoodNone {
		parts = append(parts, "mood "+spec.Mood.String())
	}

	switch spec.DateMode {
	case models.DateModeDay:
		if spec.Day != "" {
			parts = append(parts, "on "+spec.Day)
		}
	case models.DateModeMonth:
		if spec.Month != "" {
			parts = append(parts, "in "+spec.Month)
		}
	case models.DateModeRange:
		// A half-open range does not filter yet.
		if spec.Start != "" && spec.End != "" {
			parts = append(parts, spec.Start+" to "+spec.End)
		}
	}

	if len(parts) == 0 {
		return "No filter"
	}
	return "Filter: " + strings.Join(parts, " · ")
}
