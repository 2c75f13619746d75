// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-diary/internal/dashboard"
	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow     = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	testSession = models.Session{UserID: 7, Username: "ana", Token: "tok"}
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func sampleEntries(t *testing.T) []models.Entry {
	return []models.Entry{
		{
			ID:        "e2",
			Title:     "Rainy walk",
			Content:   "Forgot the umbrella",
			EntryDate: mustDate(t, "2026-10-01"),
			Mood:      models.MoodSad,
			CreatedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "e1",
			Title:     "Beach day",
			Content:   "Sand everywhere",
			EntryDate: mustDate(t, "2026-10-14"),
			Mood:      models.MoodHappy,
			CreatedAt: testNow.Add(-time.Hour),
		},
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

func newTestApp(t *testing.T) (appModel, *mock.MockClientEntryService, *mock.MockClientAuthService) {
	ctrl := gomock.NewController(t)
	entries := mock.NewMockClientEntryService(ctrl)
	auth := mock.NewMockClientAuthService(ctrl)

	services := &service.ClientServices{AuthService: auth, EntryService: entries}
	m := newAppModel(context.Background(), services, testSession, "ml")
	m.now = func() time.Time { return testNow }
	return m, entries, auth
}

func loadedApp(t *testing.T) (appModel, *mock.MockClientEntryService, *mock.MockClientAuthService) {
	m, entries, auth := newTestApp(t)
	m, _ = update(t, m, entriesLoadedMsg{entries: sampleEntries(t)})
	require.Equal(t, dashboard.StateReady, m.board.State())
	return m, entries, auth
}

func openedApp(t *testing.T, id string, editable bool) appModel {
	m, _, _ := loadedApp(t)
	entry, ok := m.board.Find(id)
	require.True(t, ok)

	next, _ := m.openEntry(id)
	m, _ = update(t, next.(appModel), entryOpenedMsg{details: models.EntryDetailsResponse{
		EntryResponse: models.NewEntryResponse(entry),
		UserID:        testSession.UserID,
		Editable:      editable,
		EditableUntil: entry.CreatedAt.Add(72 * time.Hour),
	}})
	return m
}

func TestAppModel_InitLoadsEntries(t *testing.T) {
	m, entries, _ := newTestApp(t)

	entries.EXPECT().List(gomock.Any(), testSession).Return(sampleEntries(t), nil)

	msg := m.cmdLoadEntries()()
	m, _ = update(t, m, msg)

	view := m.board.View()
	require.Len(t, view, 2)
	assert.Equal(t, "e1", view[0].ID, "newest entry date first")
	assert.Contains(t, m.View(), "Beach day")
	assert.Contains(t, m.View(), "Showing 2 of 2")
}

func TestAppModel_LoadFailureShowsError(t *testing.T) {
	m, _, _ := newTestApp(t)

	m, cmd := update(t, m, entriesLoadedMsg{err: fmt.Errorf("%w: boom", service.ErrServerRejected)})

	assert.Nil(t, cmd)
	assert.Equal(t, dashboard.StateError, m.board.State())
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Press r to try again")
}

func TestAppModel_ExpiredSessionEndsLoop(t *testing.T) {
	m, _, _ := newTestApp(t)

	m, cmd := update(t, m, entriesLoadedMsg{err: fmt.Errorf("%w: token", service.ErrSessionExpired)})

	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.True(t, m.expired)
}

func TestAppModel_FilterByTerm(t *testing.T) {
	m, _, _ := loadedApp(t)

	m, _ = update(t, m, runeKey("/"))
	require.Equal(t, screenFilter, m.currentScreen)

	m.filter.inputs[filterTerm].SetValue("RAIN")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenList, m.currentScreen)
	view := m.board.View()
	require.Len(t, view, 1)
	assert.Equal(t, "e2", view[0].ID)
	assert.Contains(t, m.View(), `text "RAIN"`)
	assert.Contains(t, m.View(), "Showing 1 of 2")

	m, _ = update(t, m, runeKey("x"))
	assert.Len(t, m.board.View(), 2)
	assert.Contains(t, m.View(), "No filter")
}

func TestAppModel_InvalidFilterKeepsPanelOpen(t *testing.T) {
	m, _, _ := loadedApp(t)
	m, _ = update(t, m, runeKey("/"))

	m.filter.modeIdx = 1
	m.filter.inputs[filterDay].SetValue("2026-13-40")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenFilter, m.currentScreen)
	assert.NotEmpty(t, m.filter.errMsg)
	assert.True(t, m.board.Filter().IsZero())
	assert.Len(t, m.board.View(), 2)
}

func TestAppModel_FilterByMonth(t *testing.T) {
	m, _, _ := loadedApp(t)
	m, _ = update(t, m, runeKey("/"))

	m.filter.setFocus(filterMode)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, models.DateModeMonth, m.filter.mode())

	m.filter.inputs[filterMonth].SetValue("2026-10")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, m.board.View(), 2)
	assert.Contains(t, m.View(), "in 2026-10")
}

func TestAppModel_NotEditableEntry(t *testing.T) {
	m := openedApp(t, "e2", false)

	assert.Contains(t, m.View(), "(no longer editable)")
	assert.NotContains(t, m.detail.hotKeys(), "e: edit")

	m, cmd := update(t, m, runeKey("e"))
	assert.Nil(t, cmd)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.True(t, m.showError)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestAppModel_EditEntry(t *testing.T) {
	m := openedApp(t, "e1", true)
	entries := m.services.EntryService.(*mock.MockClientEntryService)

	assert.Contains(t, m.View(), "Editable until")

	m, _ = update(t, m, runeKey("e"))
	require.Equal(t, screenEntryForm, m.currentScreen)
	require.True(t, m.form.editing)
	assert.Equal(t, "Beach day", m.form.title.Value())

	m.form.title.SetValue("Beach day, again")

	entries.EXPECT().
		Update(gomock.Any(), testSession, "e1", models.UpdateEntryRequest{Title: "Beach day, again", Content: "Sand everywhere"}).
		Return(nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	m, cmd = update(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.True(t, m.detail.loading)

	edited, _ := m.board.Find("e1")
	edited.Title = "Beach day, again"
	edited.UpdatedAt = testNow
	entries.EXPECT().Get(gomock.Any(), testSession, "e1").Return(models.EntryDetailsResponse{
		EntryResponse: models.NewEntryResponse(edited),
		Editable:      true,
	}, nil)

	m, _ = update(t, m, cmd())

	assert.False(t, m.detail.loading)
	got, ok := m.board.Find("e1")
	require.True(t, ok)
	assert.Equal(t, "Beach day, again", got.Title)
}

func TestAppModel_EditRejectedByServer(t *testing.T) {
	m := openedApp(t, "e1", true)
	entries := m.services.EntryService.(*mock.MockClientEntryService)

	m, _ = update(t, m, runeKey("e"))
	entries.EXPECT().Update(gomock.Any(), testSession, "e1", gomock.Any()).
		Return(fmt.Errorf("%w: too late", service.ErrEntryNotEditable))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, cmd = update(t, m, cmd())

	assert.Nil(t, cmd)
	assert.Equal(t, screenEntryForm, m.currentScreen)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Entries can only be edited within 3 days of creation", m.form.errMsg)
}

func TestAppModel_CreateEntry(t *testing.T) {
	m, entries, _ := loadedApp(t)

	m, _ = update(t, m, runeKey("n"))
	require.Equal(t, screenEntryForm, m.currentScreen)
	require.False(t, m.form.editing)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, errTitleContentRequired.Error(), m.form.errMsg)

	date := mustDate(t, "2026-10-10")
	m.form.title.SetValue(" Picnic ")
	m.form.content.SetValue("Lemonade")
	m.form.moodIdx = 1
	m.form.date.SetValue("2026-10-10")
	m.form.photos.SetValue("a.png, ,b.jpg")

	entries.EXPECT().Create(gomock.Any(), testSession, models.CreateEntryRequest{
		Title:     "Picnic",
		Content:   "Lemonade",
		EntryDate: &date,
		Mood:      models.Moods[0],
	}, "a.png", "b.jpg").Return("e3", nil)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	created := models.Entry{ID: "e3", Title: "Picnic", Content: "Lemonade", EntryDate: date, CreatedAt: testNow}
	entries.EXPECT().Get(gomock.Any(), testSession, "e3").Return(models.EntryDetailsResponse{
		EntryResponse: models.NewEntryResponse(created),
		Editable:      true,
	}, nil)

	m, cmd = update(t, m, cmd())
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenDetail, m.currentScreen)
	assert.Len(t, m.board.Entries(), 3)
}

func TestAppModel_DeleteEntry(t *testing.T) {
	m := openedApp(t, "e2", false)
	entries := m.services.EntryService.(*mock.MockClientEntryService)

	m, cmd := update(t, m, runeKey("d"))
	assert.Nil(t, cmd)
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "Rainy walk"?`)

	entries.EXPECT().Delete(gomock.Any(), testSession, "e2").Return(nil)

	m, cmd = update(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, screenList, m.currentScreen)
	_, found := m.board.Find("e2")
	assert.False(t, found)
	assert.Equal(t, "Entry deleted", m.list.status)
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	m := openedApp(t, "e2", false)

	m, _ = update(t, m, runeKey("d"))
	m, cmd := update(t, m, runeKey("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, m.pendingDelete)
	_, found := m.board.Find("e2")
	assert.True(t, found)
}

func TestAppModel_TranslateToggle(t *testing.T) {
	m := openedApp(t, "e1", true)
	entries := m.services.EntryService.(*mock.MockClientEntryService)

	entries.EXPECT().Translate(gomock.Any(), testSession, "e1", "ml").
		Return(models.Translation{Title: "ബീച്ച്", Content: "മണൽ", TargetLanguage: "ml"}, nil)

	m, cmd := update(t, m, runeKey("t"))
	require.NotNil(t, cmd)
	assert.True(t, m.detail.translating)

	m, _ = update(t, m, cmd())
	assert.True(t, m.detail.translated)
	assert.Contains(t, m.View(), "Translated to ml")
	assert.Contains(t, m.detail.clipboardText(), "മണൽ")

	m, cmd = update(t, m, runeKey("t"))
	assert.Nil(t, cmd, "cached translation is toggled without a request")
	assert.False(t, m.detail.translated)
	assert.Contains(t, m.detail.clipboardText(), "Sand everywhere")
}

func TestAppModel_TranslateFailure(t *testing.T) {
	m := openedApp(t, "e1", true)

	m, _ = update(t, m, translatedMsg{id: "e1", err: fmt.Errorf("%w: upstream", service.ErrDependency)})

	assert.False(t, m.detail.translated)
	assert.True(t, m.showError)
	assert.Equal(t, "An external service is unavailable, try again later", m.errorOverlay.message)
}

func TestAppModel_Logout(t *testing.T) {
	m, _, auth := loadedApp(t)

	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	m, cmd := update(t, m, runeKey("l"))
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())

	assert.True(t, m.logout)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestAppModel_ListNavigation(t *testing.T) {
	m, _, _ := loadedApp(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.list.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.list.idx)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, m.currentScreen)
	assert.True(t, m.detail.loading)
}
