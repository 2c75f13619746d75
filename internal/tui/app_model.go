// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/dashboard"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenFilter
	screenDetail
	screenEntryForm
)

const statusTimeout = 2 * time.Second

// appModel is the signed-in part of the client: the entry list with its
// filter, entry details and the entry form.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session
	language string
	now      func() time.Time

	currentScreen screen
	board         *dashboard.Controller

	list   listModel
	filter filterModel
	detail detailModel
	form   entryFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	logout  bool
	expired bool
	quit    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, session models.Session, language string) appModel {
	board := dashboard.NewController()
	return appModel{
		ctx:           ctx,
		services:      services,
		session:       session,
		language:      language,
		now:           time.Now,
		currentScreen: screenList,
		board:         board,
		list:          newListModel(),
	}
}

// Init starts the first fetch. A new controller is already loading.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadEntries())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteEntry(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case entriesLoadedMsg:
		if err := m.board.Loaded(msg.entries, msg.err); err != nil {
			return m.failed(err)
		}
		m.list.clamp(len(m.board.View()))
		return m, nil
	case entryOpenedMsg:
		m.detail.loading = false
		if msg.err != nil {
			m.currentScreen = screenList
			return m.failed(msg.err)
		}
		m.detail.entry = msg.details
		if err := m.board.Upsert(entryFromDetails(msg.details)); err != nil {
			return m, m.reload()
		}
		return m, nil
	case entrySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m.expireOn(msg.err)
		}
		return m.openEntry(msg.id)
	case entryDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			return m.failed(msg.err)
		}
		if err := m.board.Remove(msg.id); err != nil {
			return m, m.reload()
		}
		m.list.clamp(len(m.board.View()))
		m.currentScreen = screenList
		m.list.status = "Entry deleted"
		return m, cmdClearStatus()
	case translatedMsg:
		m.detail.translating = false
		if msg.err != nil {
			return m.failed(msg.err)
		}
		if msg.id != m.detail.entry.ID {
			return m, nil
		}
		m.detail.translation = &msg.translation
		m.detail.translated = true
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			return m.failed(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.board.State() != dashboard.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenFilter:
		return m.updateFilter(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEntryForm:
		return m.updateEntryForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(m.board, m.session.Username, m.now())
	case screenFilter:
		body = m.filter.View()
	case screenDetail:
		body = m.detail.View()
	case screenEntryForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// failed reports err to the user, or ends the main loop when the session
// is no longer valid.
func (m appModel) failed(err error) (tea.Model, tea.Cmd) {
	if model, cmd := m.expireOn(err); cmd != nil {
		return model, cmd
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

func (m appModel) expireOn(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrNotSignedIn) {
		m.expired = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) reload() tea.Cmd {
	m.board.BeginLoad()
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadEntries())
}

func (m appModel) openEntry(id string) (tea.Model, tea.Cmd) {
	m.detail = detailModel{loading: true}
	m.currentScreen = screenDetail
	return m, m.cmdOpenEntry(id)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	view := m.board.View()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(view)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current(view)
		if !ok {
			return m, nil
		}
		return m.openEntry(entry.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newEntryFormModel()
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.filter):
		m.filter = newFilterModel(m.board.Filter())
		m.currentScreen = screenFilter
	case key.Matches(keyMsg, keys.clear):
		m.board.ClearFilter()
		m.list.clamp(len(m.board.View()))
	case key.Matches(keyMsg, keys.refresh):
		if m.board.State() == dashboard.StateLoading {
			return m, nil
		}
		return m, m.reload()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			m.filter.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			m.filter.move(-1)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.filter.cycle(-1) {
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.filter.cycle(1) {
				return m, nil
			}
		case keyMsg.String() == "ctrl+x":
			m.board.ClearFilter()
			m.list.clamp(len(m.board.View()))
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if err := m.board.SetFilter(m.filter.spec()); err != nil {
				m.filter.errMsg = humanizeError(err)
				return m, nil
			}
			m.filter.errMsg = ""
			m.list.idx = 0
			m.currentScreen = screenList
			return m, nil
		}
	}

	in, ok := m.filter.inputs[m.filter.focus]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.detail.loading {
		if ok && key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenList
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		if !m.detail.entry.Editable {
			m.showErrorf(humanizeError(service.ErrEntryNotEditable))
			return m, nil
		}
		m.form = newEditFormModel(m.detail.entry.EntryResponse)
		m.currentScreen = screenEntryForm
	case key.Matches(keyMsg, keys.delete):
		m.pendingDelete = m.detail.entry.ID
		m.confirm = confirmModel{message: m.detail.entry.Title}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.clipboardText())
	case key.Matches(keyMsg, keys.translate):
		if m.detail.translating {
			return m, nil
		}
		if m.detail.translation != nil {
			m.detail.translated = !m.detail.translated
			return m, nil
		}
		m.detail.translating = true
		return m, m.cmdTranslate(m.detail.entry.ID)
	}
	return m, nil
}

func (m appModel) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.move(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.move(-1)
			return m, nil
		case m.form.focus == formMood && key.Matches(keyMsg, keys.left):
			m.form.cycleMood(-1)
			return m, nil
		case m.form.focus == formMood && key.Matches(keyMsg, keys.right):
			m.form.cycleMood(1)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	if m.form.editing {
		req, err := m.form.updateRequest()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdUpdateEntry(m.form.entryID, req)
	}

	req, photos, err := m.form.createRequest()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	m.form.errMsg = ""
	m.form.submitting = true
	return m, m.cmdCreateEntry(req, photos)
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	return func() tea.Msg {
		entries, err := svc.List(ctx, session)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdOpenEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	return func() tea.Msg {
		details, err := svc.Get(ctx, session, id)
		return entryOpenedMsg{details: details, err: err}
	}
}

func (m appModel) cmdCreateEntry(req models.CreateEntryRequest, photoPaths []string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	return func() tea.Msg {
		id, err := svc.Create(ctx, session, req, photoPaths...)
		return entrySavedMsg{id: id, err: err}
	}
}

func (m appModel) cmdUpdateEntry(id string, req models.UpdateEntryRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	return func() tea.Msg {
		err := svc.Update(ctx, session, id, req)
		return entrySavedMsg{id: id, err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	return func() tea.Msg {
		err := svc.Delete(ctx, session, id)
		return entryDeletedMsg{id: id, err: err}
	}
}

func (m appModel) cmdTranslate(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	session := m.session
	language := m.language
	return func() tea.Msg {
		translation, err := svc.Translate(ctx, session, id, language)
		return translatedMsg{id: id, translation: translation, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
