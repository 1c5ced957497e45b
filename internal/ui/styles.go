package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/ui/modals"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// Color palette, regenerated from the current theme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorError       color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style
	SidebarSectionStyle  lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusErrorStyle lipgloss.Style
	MutedStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
// and pushes them into the panels and modals packages.
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true)

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	SidebarSectionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	panels.SetStyles(
		PanelTitleStyle,
		lipgloss.NewStyle().Bold(true).Foreground(ColorText),
		SidebarItemStyle,
		SidebarSelectedStyle,
		MutedStyle,
		StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorUser, ColorAssistant,
		ColorSuccess, ColorWarning, ColorError,
		lipgloss.Color(t.DiffAdded), lipgloss.Color(t.DiffRemoved), lipgloss.Color(t.DiffHeader), lipgloss.Color(t.DiffHunk),
	)

	modals.SetPalette(modals.Palette{
		Title:          ModalTitleStyle,
		Help:           ModalHelpStyle,
		Item:           SidebarItemStyle,
		Selected:       SidebarSelectedStyle,
		Error:          StatusErrorStyle,
		Primary:        ColorPrimary,
		Secondary:      ColorSecondary,
		Text:           ColorText,
		Muted:          ColorTextMuted,
		Inverse:        ColorTextInverse,
		Warning:        ColorWarning,
		InputWidth:     ModalInputWidth,
		InputCharLimit: ModalInputCharLimit,
		Width:          ModalWidth,
	})
}
