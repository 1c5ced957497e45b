package panels

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/keys"
)

// PricingPanel shows the plans side by side.
type PricingPanel struct {
	tiers  []Tier
	cursor int
}

func (*PricingPanel) panel() {}

// NewPricingPanel creates the pricing view.
func NewPricingPanel(tiers []Tier) *PricingPanel {
	p := &PricingPanel{tiers: tiers}
	for i, t := range tiers {
		if t.Highlight {
			p.cursor = i
		}
	}
	return p
}

func (p *PricingPanel) ID() ID        { return Pricing }
func (p *PricingPanel) Title() string { return "Pricing" }

func (p *PricingPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "h", keys.Left:
			if p.cursor > 0 {
				p.cursor--
			}
		case "l", keys.Right:
			if p.cursor < len(p.tiers)-1 {
				p.cursor++
			}
		}
	}
	return p, nil
}

func (p *PricingPanel) View(width, height int) string {
	if len(p.tiers) == 0 {
		return TitleStyle.Render(p.Title())
	}
	cardWidth := max(width/len(p.tiers)-2, 16)

	cards := make([]string, len(p.tiers))
	for i, t := range p.tiers {
		border := ColorTextMuted
		if i == p.cursor {
			border = ColorPrimary
		}
		var sb strings.Builder
		sb.WriteString(SubtitleStyle.Render(t.Name) + "\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render(t.Price) + "\n")
		sb.WriteString(MutedStyle.Render(t.Per) + "\n\n")
		for _, f := range t.Features {
			sb.WriteString("• " + f + "\n")
		}
		cards[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(cardWidth).
			Render(strings.TrimRight(sb.String(), "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(p.Title()),
		MutedStyle.Render("h/l compare plans"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}
