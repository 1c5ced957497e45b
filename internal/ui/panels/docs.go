package panels

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DocPanel renders one static documentation page in a scrollable viewport.
type DocPanel struct {
	id       ID
	title    string
	body     string
	viewport viewport.Model
	width    int
	height   int
}

func (*DocPanel) panel() {}

// NewDocPanel creates a documentation page.
func NewDocPanel(id ID, title, body string) *DocPanel {
	return &DocPanel{id: id, title: title, body: body, viewport: viewport.New()}
}

func (p *DocPanel) ID() ID        { return p.id }
func (p *DocPanel) Title() string { return p.title }

func (p *DocPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); !ok {
		return p, nil
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *DocPanel) View(width, height int) string {
	if width != p.width || height != p.height {
		p.width, p.height = width, height
		p.viewport.SetWidth(width)
		p.viewport.SetHeight(max(height-1, 1))
		p.viewport.SetContent(lipgloss.NewStyle().Foreground(ColorText).Width(width).Render(p.body))
	}
	return TitleStyle.Render(p.title) + "\n" + p.viewport.View()
}
