package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/ui"
)

// flash shows text in the footer, records it in the debug log and starts the
// auto-dismiss timer. Errors and warnings shown to the user should also be
// findable in the log afterwards.
func (m *Model) flash(kind ui.FlashType, text string) tea.Cmd {
	switch kind {
	case ui.FlashError:
		m.log.Error("flash", "text", text)
	case ui.FlashWarning:
		m.log.Warn("flash", "text", text)
	default:
		m.log.Debug("flash", "text", text)
	}
	m.footer.SetFlash(text, kind)
	return ui.FlashTick()
}

func (m *Model) flashError(text string) tea.Cmd   { return m.flash(ui.FlashError, text) }
func (m *Model) flashWarning(text string) tea.Cmd { return m.flash(ui.FlashWarning, text) }
func (m *Model) flashInfo(text string) tea.Cmd    { return m.flash(ui.FlashInfo, text) }
func (m *Model) flashSuccess(text string) tea.Cmd { return m.flash(ui.FlashSuccess, text) }
