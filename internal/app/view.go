package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < ui.MinTerminalWidth || m.height < ui.MinTerminalHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("Terminal too small (%dx%d, need %dx%d)",
				m.width, m.height, ui.MinTerminalWidth, ui.MinTerminalHeight))
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.footer.SetContext(m.focus == FocusSidebar, m.router.Active())

	ctx := ui.GetViewContext()
	style := ui.PanelStyle
	if m.focus == FocusPanel {
		style = ui.PanelFocusedStyle
	}
	content := m.router.View(ctx.InnerWidth(ctx.ContentWidth), ctx.InnerHeight(ctx.ContentHeight))
	panel := style.
		Width(ctx.ContentWidth).
		Height(ctx.ContentHeight).
		MaxHeight(ctx.ContentHeight).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), panel)
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}
