package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// LoginState - State for entering the API token
// =============================================================================

type LoginState struct {
	TokenInput textinput.Model
	APIURL     string
	HasToken   bool
}

func (*LoginState) modalState() {}

func (s *LoginState) Title() string { return "Log In" }

func (s *LoginState) Help() string {
	return "Enter: save token  Esc: cancel"
}

func (s *LoginState) Render() string {
	title := palette.Title.Render(s.Title())

	muted := lipgloss.NewStyle().Foreground(palette.Muted)
	lines := []string{title}
	if s.APIURL != "" {
		lines = append(lines, muted.Render("Backend: "+s.APIURL))
	}
	if s.HasToken {
		lines = append(lines, muted.Italic(true).Render("A token is already stored; saving replaces it."))
	}

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Primary).
		PaddingLeft(1)
	lines = append(lines,
		muted.Render("API token:"),
		inputStyle.Render(s.TokenInput.View()),
		palette.Help.Render(s.Help()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *LoginState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.TokenInput, cmd = s.TokenInput.Update(msg)
	return s, cmd
}

// Token returns the entered token with surrounding whitespace removed.
func (s *LoginState) Token() string {
	return strings.TrimSpace(s.TokenInput.Value())
}

// NewLoginState creates a LoginState with a masked, focused token input.
func NewLoginState(apiURL string, hasToken bool) *LoginState {
	ti := textinput.New()
	ti.Placeholder = "acs_..."
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = palette.InputCharLimit
	ti.SetWidth(palette.InputWidth)
	ti.Focus()

	return &LoginState{
		TokenInput: ti,
		APIURL:     apiURL,
		HasToken:   hasToken,
	}
}
