package panels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// HistoryPanel lists commits with AI provenance and transport metadata.
type HistoryPanel struct {
	commits []studio.Commit
	cursor  int
}

func (*HistoryPanel) panel() {}

// NewHistoryPanel creates the history view.
func NewHistoryPanel(commits []studio.Commit) *HistoryPanel {
	return &HistoryPanel{commits: commits}
}

func (p *HistoryPanel) ID() ID        { return History }
func (p *HistoryPanel) Title() string { return "Git History" }

// Selected returns the commit under the cursor.
func (p *HistoryPanel) Selected() (studio.Commit, bool) {
	if p.cursor >= len(p.commits) {
		return studio.Commit{}, false
	}
	return p.commits[p.cursor], true
}

func (p *HistoryPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "k", keys.Up:
			if p.cursor > 0 {
				p.cursor--
			}
		case "j", keys.Down:
			if p.cursor < len(p.commits)-1 {
				p.cursor++
			}
		case "y":
			if c, ok := p.Selected(); ok {
				return p, func() tea.Msg { return CopyTextMsg{Text: c.SHA, Label: c.SHA} }
			}
		}
	}
	return p, nil
}

func (p *HistoryPanel) View(width, height int) string {
	shaStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	aiStyle := lipgloss.NewStyle().Foreground(ColorAssistant)

	lines := []string{TitleStyle.Render(p.Title()), MutedStyle.Render("j/k select · y copy sha")}
	for i, c := range p.commits {
		author := c.Author
		if c.AIGenerated {
			author = aiStyle.Render("✦ " + c.Author)
		}
		row := fmt.Sprintf("%s  %s  %s  %s",
			shaStyle.Render(c.SHA), ansi.Truncate(c.Message, max(width/2, 10), "…"), author,
			MutedStyle.Render(humanize.Time(c.Timestamp)))
		style := ItemStyle
		if i == p.cursor {
			style = SelectedStyle
		}
		lines = append(lines, style.Width(width).Render(row))
	}

	if c, ok := p.Selected(); ok {
		lines = append(lines, "", SubtitleStyle.Render(c.Message))
		detail := []string{
			"commit     " + c.SHA,
			"author     " + c.Author,
			"date       " + c.Timestamp.Format("2006-01-02 15:04 MST"),
		}
		if c.TransportNr != "" {
			detail = append(detail, "transport  "+c.TransportNr)
		}
		if c.ReviewStatus != "" {
			detail = append(detail, "review     "+string(c.ReviewStatus))
		}
		if c.AIGenerated {
			detail = append(detail, fmt.Sprintf("model      %s (confidence %.0f%%)", c.Model, c.Confidence*100))
		}
		if len(c.ObjectsChange) > 0 {
			detail = append(detail, "objects    "+strings.Join(c.ObjectsChange, ", "))
		}
		lines = append(lines, detail...)
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
