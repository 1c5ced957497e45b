package panels

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// SecurityPanel lists the data-handling commitments.
type SecurityPanel struct {
	controls []Control
}

func (*SecurityPanel) panel() {}

// NewSecurityPanel creates the security view.
func NewSecurityPanel(controls []Control) *SecurityPanel {
	return &SecurityPanel{controls: controls}
}

func (p *SecurityPanel) ID() ID        { return Security }
func (p *SecurityPanel) Title() string { return "Security" }

func (p *SecurityPanel) Update(tea.Msg) (Panel, tea.Cmd) { return p, nil }

func (p *SecurityPanel) View(width, height int) string {
	check := lipgloss.NewStyle().Foreground(ColorSuccess).Render("✓")
	detail := MutedStyle.Width(max(width-4, 10)).PaddingLeft(3)

	lines := []string{TitleStyle.Render(p.Title()), ""}
	for _, c := range p.controls {
		lines = append(lines, check+" "+SubtitleStyle.Render(c.Name), detail.Render(c.Detail))
	}
	return strings.Join(lines, "\n")
}
