package panels

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables - these will be set by the parent ui package via SetStyles
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	MutedStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorSuccess     color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorDiffAdded   color.Color
	ColorDiffRemoved color.Color
	ColorDiffHeader  color.Color
	ColorDiffHunk    color.Color
)

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any panels.
func SetStyles(
	title, subtitle, item, selected, muted, errStyle lipgloss.Style,
	primary, secondary, text, textMuted, user, assistant color.Color,
	success, warning, errColor color.Color,
	diffAdded, diffRemoved, diffHeader, diffHunk color.Color,
) {
	TitleStyle = title
	SubtitleStyle = subtitle
	ItemStyle = item
	SelectedStyle = selected
	MutedStyle = muted
	ErrorStyle = errStyle

	ColorPrimary = primary
	ColorSecondary = secondary
	ColorText = text
	ColorTextMuted = textMuted
	ColorUser = user
	ColorAssistant = assistant
	ColorSuccess = success
	ColorWarning = warning
	ColorError = errColor
	ColorDiffAdded = diffAdded
	ColorDiffRemoved = diffRemoved
	ColorDiffHeader = diffHeader
	ColorDiffHunk = diffHunk
}

