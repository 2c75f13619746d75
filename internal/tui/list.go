// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/internal/dashboard"
	"github.com/MKhiriev/go-diary/internal/diary"
	"github.com/MKhiriev/go-diary/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const listTitleWidth = 40

type listModel struct {
	idx     int
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

// clamp keeps the cursor inside a view of n entries.
func (m *listModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current(view []models.Entry) (models.Entry, bool) {
	if m.idx < 0 || m.idx >= len(view) {
		return models.Entry{}, false
	}
	return view[m.idx], true
}

func (m listModel) View(board *dashboard.Controller, username string, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Hello, %s\n", valueOrDash(username)))
	b.WriteString(mutedStyle.Render(filterSummary(board.Filter())))
	b.WriteString("\n\n")

	switch board.State() {
	case dashboard.StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading entries...\n")
	case dashboard.StateError:
		b.WriteString(errorStyle.Render("Could not load entries: " + humanizeError(board.Err())))
		b.WriteString("\n")
		b.WriteString("Press r to try again.\n")
	default:
		view := board.View()
		total := len(board.Entries())

		switch {
		case total == 0:
			b.WriteString("No entries yet. Press n to write your first one.\n")
		case len(view) == 0:
			b.WriteString("No entries match the filter.\n")
		default:
			b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d", len(view), total)))
			b.WriteString("\n\n")
			for i, entry := range view {
				b.WriteString(m.row(entry, i == m.idx, now))
				b.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("MY DIARY", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ /: filter │ x: clear filter │ r: refresh │ l: logout │ q: quit")
}

func (m listModel) row(entry models.Entry, selected bool, now time.Time) string {
	mood := string(entry.Mood)
	if mood == "" {
		mood = "  "
	}

	lock := " "
	if !diary.IsEditable(entry.CreatedAt, now) {
		lock = "·"
	}

	line := fmt.Sprintf("%s %s %s %s", entry.EntryDate, mood, lock, fitText(entry.Title, listTitleWidth))
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}
