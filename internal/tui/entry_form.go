// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-diary/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	formTitle formField = iota
	formContent
	formMood
	formDate
	formPhotos
)

// entryFormModel creates a new entry or edits an existing one. Editing only
// touches title and content; date, mood and photos are fixed at creation.
type entryFormModel struct {
	editing bool
	entryID string

	title   textinput.Model
	content textarea.Model
	date    textinput.Model
	photos  textinput.Model
	moodIdx int // 0 is "no mood"

	focus      formField
	submitting bool
	errMsg     string
}

func newEntryFormModel() entryFormModel {
	title := textinput.New()
	title.Placeholder = "What was today about?"
	title.CharLimit = 200
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "Write freely..."
	content.SetWidth(60)
	content.SetHeight(8)
	content.CharLimit = 0

	date := textinput.New()
	date.Placeholder = models.Today().String() + " (empty for today)"
	date.CharLimit = 10
	date.Width = 30

	photos := textinput.New()
	photos.Placeholder = "comma separated image paths"
	photos.Width = 50

	m := entryFormModel{title: title, content: content, date: date, photos: photos}
	m.setFocus(formTitle)
	return m
}

func newEditFormModel(entry models.EntryResponse) entryFormModel {
	m := newEntryFormModel()
	m.editing = true
	m.entryID = entry.ID
	m.title.SetValue(entry.Title)
	m.content.SetValue(entry.Content)
	return m
}

func (m entryFormModel) fields() []formField {
	if m.editing {
		return []formField{formTitle, formContent}
	}
	return []formField{formTitle, formContent, formMood, formDate, formPhotos}
}

func (m *entryFormModel) setFocus(field formField) {
	m.title.Blur()
	m.content.Blur()
	m.date.Blur()
	m.photos.Blur()

	switch field {
	case formTitle:
		m.title.Focus()
	case formContent:
		m.content.Focus()
	case formDate:
		m.date.Focus()
	case formPhotos:
		m.photos.Focus()
	}
	m.focus = field
}

func (m *entryFormModel) move(step int) {
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

func (m *entryFormModel) cycleMood(step int) {
	n := len(models.Moods) + 1
	m.moodIdx = (m.moodIdx + step + n) % n
}

func (m entryFormModel) mood() models.Mood {
	if m.moodIdx == 0 {
		return models.MoodNone
	}
	return models.Moods[m.moodIdx-1]
}

// updateInput forwards msg to the focused input.
func (m entryFormModel) updateInput(msg tea.Msg) (entryFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case formTitle:
		m.title, cmd = m.title.Update(msg)
	case formContent:
		m.content, cmd = m.content.Update(msg)
	case formDate:
		m.date, cmd = m.date.Update(msg)
	case formPhotos:
		m.photos, cmd = m.photos.Update(msg)
	}
	return m, cmd
}

// createRequest validates the form for a new entry and returns the request
// with the local photo paths to upload.
func (m entryFormModel) createRequest() (models.CreateEntryRequest, []string, error) {
	req := models.CreateEntryRequest{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: strings.TrimSpace(m.content.Value()),
		Mood:    m.mood(),
	}
	if req.Title == "" || req.Content == "" {
		return req, nil, errTitleContentRequired
	}

	if raw := strings.TrimSpace(m.date.Value()); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return req, nil, fmt.Errorf("date must look like %s", models.DateLayout)
		}
		req.EntryDate = &date
	}

	return req, splitPaths(m.photos.Value()), nil
}

func (m entryFormModel) updateRequest() (models.UpdateEntryRequest, error) {
	req := models.UpdateEntryRequest{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: strings.TrimSpace(m.content.Value()),
	}
	if req.Title == "" || req.Content == "" {
		return req, errTitleContentRequired
	}
	return req, nil
}

func splitPaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (m entryFormModel) View() string {
	var b strings.Builder

	label := func(field formField, text string) {
		if m.focus == field {
			b.WriteString(selectedStyle.Render("> " + text))
		} else {
			b.WriteString("  " + text)
		}
		b.WriteString("\n")
	}

	label(formTitle, "Title")
	b.WriteString("  [" + m.title.View() + "]\n\n")

	label(formContent, "Content")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	if !m.editing {
		b.WriteString("\n")
		mood := "none"
		if m.moodIdx > 0 {
			mood = m.mood().String()
		}
		label(formMood, "Mood")
		b.WriteString("  ‹ " + mood + " ›\n\n")

		label(formDate, "Date")
		b.WriteString("  [" + m.date.View() + "]\n\n")

		label(formPhotos, "Photos")
		b.WriteString("  [" + m.photos.View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "NEW ENTRY"
	if m.editing {
		title = "EDIT ENTRY"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ←/→: mood │ ctrl+s: save │ esc: cancel")
}
