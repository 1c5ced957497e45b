package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/modals"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case ui.NavigateMsg:
		return m, m.navigate(msg.ID)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	// Requests from panels
	case panels.SubmitPromptMsg:
		return m, m.submitPrompt(msg)
	case panels.RefreshObjectsMsg:
		return m, m.loadObjects(msg.Type)
	case panels.ObjectSelectedMsg:
		return m, m.flashInfo(string(msg.Object.Type) + " " + msg.Object.Name + " selected")
	case panels.CopyTextMsg:
		return m, m.copyText(msg)
	case panels.OpenReviewMsg:
		return m, m.openReview(msg.SessionID)

	// API results
	case sessionCreatedMsg:
		return m, m.handleSessionCreated(msg)
	case objectsLoadedMsg:
		return m, m.handleObjectsLoaded(msg)
	case reviewDoneMsg:
		return m, m.handleReviewDone(msg)
	case systemRegisteredMsg:
		return m, m.handleSystemRegistered(msg)

	// Real-time channel and credentials
	case channelOpenedMsg:
		m.setChannelState(ui.ChannelConnecting)
		return m, nil
	case channelPollMsg:
		return m, m.pollChannel()
	case FrameMsg:
		return m, tea.Batch(m.handleFrame(msg.Frame), m.listenForFrames())
	case credentialChangedMsg:
		return m, m.handleCredentialChanged(msg)
	}

	return m, nil
}

// handleKey routes a key press: modal first, then panels capturing text,
// then global shortcuts, then whichever side has focus.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if key == keys.CtrlC {
		return m.quit()
	}

	if m.capturesInput() {
		if key == keys.Tab {
			return m, m.toggleFocus()
		}
		return m, m.router.Update(msg)
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	if m.focus == FocusSidebar {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		if key == keys.Enter || key == keys.Space {
			return m, tea.Batch(m.setFocus(FocusPanel), cmd)
		}
		return m, cmd
	}
	return m, m.router.Update(msg)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
