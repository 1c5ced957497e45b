package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/keys"
)

// =============================================================================
// ThemePickerState - State for choosing a color theme
// =============================================================================

type ThemePickerState struct {
	Themes        []string
	SelectedIndex int
	Current       string
}

func (*ThemePickerState) modalState() {}

func (s *ThemePickerState) Title() string { return "Theme" }

func (s *ThemePickerState) Help() string {
	return "up/down: navigate  Enter: apply  Esc: cancel"
}

func (s *ThemePickerState) Render() string {
	title := palette.Title.Render(s.Title())

	lines := []string{title}
	for i, name := range s.Themes {
		style := palette.Item
		prefix := "  "
		if i == s.SelectedIndex {
			style = palette.Selected
			prefix = "> "
		}
		label := prefix + name
		if name == s.Current {
			label += " (current)"
		}
		lines = append(lines, style.Render(label))
	}
	lines = append(lines, palette.Help.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *ThemePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Themes)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Selected returns the highlighted theme name.
func (s *ThemePickerState) Selected() string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Themes) {
		return ""
	}
	return s.Themes[s.SelectedIndex]
}

// NewThemePickerState creates a ThemePickerState positioned on current.
func NewThemePickerState(themes []string, current string) *ThemePickerState {
	s := &ThemePickerState{Themes: themes, Current: current}
	for i, name := range themes {
		if name == current {
			s.SelectedIndex = i
			break
		}
	}
	return s
}
