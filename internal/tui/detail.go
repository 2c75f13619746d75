// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/models"
)

type detailModel struct {
	entry       models.EntryDetailsResponse
	loading     bool
	translation *models.Translation
	translated  bool
	translating bool
	status      string
}

func (m detailModel) shownTitle() string {
	if m.translated && m.translation != nil {
		return m.translation.Title
	}
	return m.entry.Title
}

func (m detailModel) shownContent() string {
	if m.translated && m.translation != nil {
		return m.translation.Content
	}
	return m.entry.Content
}

// clipboardText is what the copy action puts on the clipboard.
func (m detailModel) clipboardText() string {
	return fmt.Sprintf("%s\n%s\n\n%s", m.shownTitle(), m.entry.EntryDate, m.shownContent())
}

func (m detailModel) View() string {
	if m.loading {
		return renderPage("ENTRY", "Loading...", "esc: back")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.shownTitle()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Date:    %s\n", m.entry.EntryDate))
	if m.entry.Mood != models.MoodNone {
		b.WriteString(fmt.Sprintf("Mood:    %s\n", m.entry.Mood))
	}
	b.WriteString(fmt.Sprintf("Written: %s\n", m.entry.CreatedAt.Local().Format("2006-01-02 15:04")))
	if !m.entry.UpdatedAt.Equal(m.entry.CreatedAt) {
		b.WriteString(fmt.Sprintf("Edited:  %s\n", m.entry.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	b.WriteString(editabilityLine(m.entry))
	b.WriteString("\n")

	if m.translated && m.translation != nil {
		b.WriteString(mutedStyle.Render("Translated to " + m.translation.TargetLanguage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.shownContent())
	b.WriteString("\n")

	if len(m.entry.Photos) > 0 {
		b.WriteString("\nPhotos:\n")
		for _, url := range m.entry.Photos {
			b.WriteString("  ")
			b.WriteString(url)
			b.WriteString("\n")
		}
	}

	if m.translating {
		b.WriteString("\nTranslating...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("ENTRY", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m detailModel) hotKeys() string {
	var keys []string
	if m.entry.Editable {
		keys = append(keys, "e: edit")
	}
	keys = append(keys, "d: delete", "c: copy")
	if m.translated {
		keys = append(keys, "t: original")
	} else {
		keys = append(keys, "t: translate")
	}
	keys = append(keys, "esc: back")
	return strings.Join(keys, " │ ")
}

func editabilityLine(entry models.EntryDetailsResponse) string {
	if !entry.Editable {
		return mutedStyle.Render("(no longer editable)")
	}
	return fmt.Sprintf("Editable until %s", entry.EditableUntil.In(time.Local).Format("2006-01-02 15:04"))
}

// entryFromDetails converts a fetched entry back into the dashboard form.
func entryFromDetails(d models.EntryDetailsResponse) models.Entry {
	return models.Entry{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Content:   d.Content,
		EntryDate: d.EntryDate,
		Photos:    d.Photos,
		Mood:      d.Mood,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
