// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-diary/internal/mock"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockClientAuthService) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	ctx := context.Background()

	pages := map[string]tea.Model{
		"menu":     NewMenuModel("You have been logged out"),
		"login":    NewLoginModel(ctx, auth),
		"register": NewRegisterModel(ctx, auth),
	}
	return NewRootModel(pages, "menu", models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")), auth
}

func updateRoot(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestMenu_Navigation(t *testing.T) {
	r, _ := newTestRoot(t)
	assert.Contains(t, r.View(), "You have been logged out")

	r, _ = updateRoot(t, r, tea.KeyMsg{Type: tea.KeyDown})
	r, cmd := updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "register"}, cmd())

	r, _ = updateRoot(t, r, cmd())
	_, onRegister := r.current.(*RegisterModel)
	assert.True(t, onRegister)
}

func TestRoot_BuildInfoOnMenuOnly(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = updateRoot(t, r, runeKey("v"))
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.0.0")

	r, _ = updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)
}

func TestRoot_QuitFromMenu(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := updateRoot(t, r, runeKey("q"))
	r, cmd = updateRoot(t, r, cmd())

	assert.True(t, r.quitByUser)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestLogin_Success(t *testing.T) {
	r, auth := newTestRoot(t)
	r, _ = updateRoot(t, r, NavigateTo{Page: "login"})

	login := r.current.(*LoginModel)
	login.inputs[0].SetValue(" ana@example.com ")
	login.inputs[1].SetValue("secret1")

	session := models.Session{UserID: 3, Email: "ana@example.com", Token: "jwt"}
	auth.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "ana@example.com", Password: "secret1"}).
		Return(session, nil)

	r, cmd := updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, login.submitting)

	r, cmd = updateRoot(t, r, cmd())

	assert.Equal(t, session, r.session)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestLogin_Failure(t *testing.T) {
	r, auth := newTestRoot(t)
	r, _ = updateRoot(t, r, NavigateTo{Page: "login"})
	login := r.current.(*LoginModel)

	r, cmd := updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", login.errMsg)

	login.inputs[0].SetValue("ana@example.com")
	login.inputs[1].SetValue("nope")
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: %w", service.ErrLoginOnServer, service.ErrWrongPassword))

	r, cmd = updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	r, cmd = updateRoot(t, r, cmd())

	assert.Nil(t, cmd)
	assert.False(t, login.submitting)
	assert.Equal(t, "Invalid email or password", login.errMsg)
	assert.Contains(t, r.View(), "Invalid email or password")
}

func TestRegister_Validation(t *testing.T) {
	m := NewRegisterModel(context.Background(), nil)

	_, errMsg := m.request()
	assert.Equal(t, "All fields are required", errMsg)

	m.inputs[0].SetValue("ana@example.com")
	m.inputs[1].SetValue("ana")
	m.inputs[2].SetValue("secret1")
	m.inputs[3].SetValue("secret2")
	_, errMsg = m.request()
	assert.Equal(t, "Passwords do not match", errMsg)

	m.inputs[3].SetValue("secret1")
	req, errMsg := m.request()
	assert.Empty(t, errMsg)
	assert.Equal(t, models.RegisterRequest{Email: "ana@example.com", Username: "ana", Password: "secret1"}, req)
}

func TestRegister_SignsIn(t *testing.T) {
	r, auth := newTestRoot(t)
	r, _ = updateRoot(t, r, NavigateTo{Page: "register"})

	reg := r.current.(*RegisterModel)
	reg.inputs[0].SetValue("ana@example.com")
	reg.inputs[1].SetValue("ana")
	reg.inputs[2].SetValue("secret1")
	reg.inputs[3].SetValue("secret1")

	session := models.Session{UserID: 4, Username: "ana", Token: "jwt"}
	auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(session, nil)

	r, cmd := updateRoot(t, r, tea.KeyMsg{Type: tea.KeyEnter})
	r, _ = updateRoot(t, r, cmd())

	assert.Equal(t, session, r.session)
}
