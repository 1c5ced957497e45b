package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/client"
	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/modals"
)

// handleModalKey dispatches a key press to the visible modal's handler.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.LoginState:
		return m.handleLoginModal(key, msg, s)
	case *modals.RegisterSystemState:
		return m.handleRegisterSystemModal(key, msg, s)
	case *modals.ReviewState:
		return m.handleReviewModal(key, msg, s)
	case *modals.ThemePickerState:
		return m.handleThemeModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleLoginModal(key string, msg tea.KeyPressMsg, state *modals.LoginState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		token := state.Token()
		if token == "" {
			m.modal.SetError("Token is required")
			return m, nil
		}
		if err := m.client.SetCredential(token); err != nil {
			m.log.Error("failed to store credential", "error", err)
			m.modal.SetError("Could not save token: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, tea.Batch(m.flashSuccess("Logged in"), m.reconnectChannel())
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleRegisterSystemModal(key string, msg tea.KeyPressMsg, state *modals.RegisterSystemState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if err := state.Validate(); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		req := client.RegisterSystemRequest{
			Name:      state.Name(),
			Type:      state.SystemType(),
			HostLabel: state.HostLabel(),
			ClientNr:  state.ClientNr(),
		}
		m.modal.Hide()
		return m, m.registerSystem(req)
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleReviewModal(key string, msg tea.KeyPressMsg, state *modals.ReviewState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		action, err := state.Action()
		if err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.reviewSession(state.SessionID, client.ReviewRequest{
			Action:  action,
			Comment: state.Comment(),
		})
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleThemeModal(key string, msg tea.KeyPressMsg, state *modals.ThemePickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		name := state.Selected()
		m.modal.Hide()
		if name == "" {
			return m, nil
		}
		ui.SetThemeByName(name)
		m.config.SetTheme(name)
		if err := m.config.Save(); err != nil {
			m.log.Warn("failed to save theme", "error", err)
			return m, m.flashWarning("Theme applied but not saved: " + err.Error())
		}
		return m, m.flashSuccess("Theme set to " + name)
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut, ok := state.SelectedShortcut()
		if !ok {
			return m, nil
		}
		m.modal.Hide()
		return m, func() tea.Msg {
			return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
		}
	}
	return m.forwardToModal(msg)
}
