package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// ChannelState is the live-update indicator shown in the header.
type ChannelState int

const (
	ChannelOff ChannelState = iota
	ChannelConnecting
	ChannelLive
)

func (s ChannelState) label() string {
	switch s {
	case ChannelConnecting:
		return "◌ connecting"
	case ChannelLive:
		return "● live"
	}
	return "○ offline"
}

const headerTitle = " codestudio"

// Header represents the top header bar
type Header struct {
	width      int
	panelTitle string
	channel    ChannelState
	apiURL     string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPanelTitle sets the title of the active panel
func (h *Header) SetPanelTitle(title string) {
	h.panelTitle = title
}

// SetChannelState sets the live-update indicator
func (h *Header) SetChannelState(state ChannelState) {
	h.channel = state
}

// SetAPIURL sets the backend address shown on wide terminals
func (h *Header) SetAPIURL(url string) {
	h.apiURL = url
}

// View renders the header
func (h *Header) View() string {
	titleText := headerTitle
	if h.panelTitle != "" {
		titleText += " › " + h.panelTitle
	}

	rightText := h.channel.label() + " "
	if h.apiURL != "" {
		withURL := h.apiURL + "  " + rightText
		if runewidth.StringWidth(titleText)+runewidth.StringWidth(withURL)+2 <= h.width {
			rightText = withURL
		}
	}

	paddingLen := max(h.width-runewidth.StringWidth(titleText)-runewidth.StringWidth(rightText), 0)
	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = runewidth.Truncate(fullContent, h.width, "")
	}

	return h.renderGradient(fullContent, len([]rune(headerTitle)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the primary
// color to the main background. The first boldRunes runes are bold.
func (h *Header) renderGradient(content string, boldRunes int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldRunes)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
