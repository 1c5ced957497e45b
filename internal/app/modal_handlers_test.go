package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/studio"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/modals"
)

func TestLoginModal_RequiresToken(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	sendKey(m, "L")
	_, ok := m.modal.State.(*modals.LoginState)
	require.True(t, ok, "L should open the login modal")

	sendKey(m, "enter")
	assert.True(t, m.modal.IsVisible(), "empty token keeps the modal open")
	assert.Equal(t, "Token is required", m.modal.GetError())
}

func TestLoginModal_SetsCredential(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	sendKey(m, "L")
	typeText(m, "acs_new")
	sendKey(m, "enter")

	assert.False(t, m.modal.IsVisible())
	assert.Equal(t, "acs_new", m.client.Credential())
	assert.True(t, m.footer.HasFlash())
}

func TestLoginModal_Escape(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	sendKey(m, "L")
	typeText(m, "abc")
	sendKey(m, "esc")

	assert.False(t, m.modal.IsVisible())
	assert.Equal(t, "test-token", m.client.Credential(), "cancel keeps the old token")
}

func TestRegisterSystemModal(t *testing.T) {
	var got client.RegisterSystemRequest
	m := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/systems", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(client.RegisterSystemResponse{ID: "sys-1", Name: got.Name})
	})

	sendKey(m, "R")
	_, ok := m.modal.State.(*modals.RegisterSystemState)
	require.True(t, ok, "R should open the register modal")

	sendKey(m, "enter")
	assert.True(t, m.modal.IsVisible(), "missing name keeps the modal open")
	assert.NotEmpty(t, m.modal.GetError())

	typeText(m, "DEV")
	cmd := sendKey(m, "enter")
	require.False(t, m.modal.IsVisible())
	deliver(m, cmd)

	assert.Equal(t, "DEV", got.Name)
	assert.Equal(t, studio.SystemECC, got.Type)
	assert.Equal(t, "100", got.ClientNr)
	assert.Equal(t, "DEV", m.targetSystem, "first registered system becomes the target")
}

func TestThemeModal_AppliesTheme(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	m := testModelWithSize(testConfig(), 120, 40)

	sendKey(m, "T")
	state, ok := m.modal.State.(*modals.ThemePickerState)
	require.True(t, ok, "T should open the theme picker")
	assert.Equal(t, string(ui.DefaultTheme), state.Selected())

	sendKey(m, "down")
	want := state.Selected()
	sendKey(m, "enter")

	assert.False(t, m.modal.IsVisible())
	assert.Equal(t, want, string(ui.CurrentThemeName()))
	assert.Equal(t, want, m.config.GetTheme())
	// The test config has no file, so saving warns.
	assert.True(t, m.footer.HasFlash())
}

func TestHelpModal(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)

	sendKey(m, "?")
	_, ok := m.modal.State.(*modals.HelpState)
	require.True(t, ok, "? should open help")

	sendKey(m, "?")
	assert.False(t, m.modal.IsVisible(), "? closes help again")
}

func TestHelpModal_TriggersShortcut(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.Update(modals.HelpShortcutTriggeredMsg{Key: "ctrl+b"})
	assert.True(t, m.Router().Collapsed())

	m.Update(modals.HelpShortcutTriggeredMsg{Key: "1-9, 0"})
	assert.True(t, m.Router().Collapsed(), "display-only entries do nothing")
}

func TestModal_BlocksGlobalKeys(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	sendKey(m, "T")

	if cmd := sendKey(m, "q"); cmd != nil {
		t.Error("q inside the theme picker should not quit")
	}
	assert.True(t, m.modal.IsVisible())
}
