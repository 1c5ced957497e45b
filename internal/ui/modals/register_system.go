package modals

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/studio"
)

// DefaultClientNr is the SAP client used when none is entered.
const DefaultClientNr = "100"

// =============================================================================
// RegisterSystemState - State for registering an SAP system
// =============================================================================

// RegisterSystemState collects system metadata. Credentials and real hostnames
// stay with the on-premise agent, so only a display label is asked for.
type RegisterSystemState struct {
	name       string
	systemType string
	hostLabel  string
	clientNr   string

	form *huh.Form
}

func (*RegisterSystemState) modalState() {}

func (s *RegisterSystemState) PreferredWidth() int { return palette.Width + 10 }

func (s *RegisterSystemState) Title() string { return "Register SAP System" }

func (s *RegisterSystemState) Help() string {
	return "Tab: next field  Enter: register  Esc: cancel"
}

func (s *RegisterSystemState) Render() string {
	title := palette.Title.Render(s.Title())
	help := palette.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *RegisterSystemState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Name returns the trimmed system name.
func (s *RegisterSystemState) Name() string { return strings.TrimSpace(s.name) }

// SystemType returns the selected system type.
func (s *RegisterSystemState) SystemType() studio.SystemType {
	return studio.SystemType(s.systemType)
}

// HostLabel returns the trimmed host label.
func (s *RegisterSystemState) HostLabel() string { return strings.TrimSpace(s.hostLabel) }

// ClientNr returns the client number, defaulting to DefaultClientNr.
func (s *RegisterSystemState) ClientNr() string {
	if c := strings.TrimSpace(s.clientNr); c != "" {
		return c
	}
	return DefaultClientNr
}

// Validate reports the first problem that would make registration fail.
func (s *RegisterSystemState) Validate() error {
	if s.Name() == "" {
		return errors.New("system name is required")
	}
	if !s.SystemType().Valid() {
		return errors.New("unknown system type")
	}
	return nil
}

func requiredField(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("required")
	}
	return nil
}

// NewRegisterSystemState creates a RegisterSystemState with ECC preselected.
func NewRegisterSystemState() *RegisterSystemState {
	s := &RegisterSystemState{
		systemType: string(studio.SystemECC),
		clientNr:   DefaultClientNr,
	}

	s.form = newForm(palette.Width,
		huh.NewInput().
			Title("Name").
			Description("Shown in listings, e.g. DEV or QAS").
			CharLimit(palette.InputCharLimit).
			Validate(requiredField).
			Value(&s.name),
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("SAP ECC (on-premise)", string(studio.SystemECC)),
				huh.NewOption("BTP ABAP Cloud", string(studio.SystemBTPABAPCloud)),
			).
			Value(&s.systemType),
		huh.NewInput().
			Title("Host label").
			Description("A label only; the agent keeps the real host").
			CharLimit(palette.InputCharLimit).
			Value(&s.hostLabel),
		huh.NewInput().
			Title("Client").
			CharLimit(3).
			Value(&s.clientNr),
	)
	return s
}
