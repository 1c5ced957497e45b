package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is the slice of the UI theme the modals draw with. The ui package
// pushes a fresh Palette whenever the theme changes.
type Palette struct {
	Title    lipgloss.Style
	Help     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	Primary   color.Color
	Secondary color.Color
	Text      color.Color
	Muted     color.Color
	Inverse   color.Color
	Warning   color.Color

	InputWidth     int
	InputCharLimit int
	Width          int // default modal width
}

var palette Palette

// HelpModalMaxVisible caps the help list height before it scrolls.
const HelpModalMaxVisible = 18

// SetPalette replaces the modal palette. It must be called before any modal
// renders; huh forms pick up the new colors when they are next created.
func SetPalette(p Palette) {
	palette = p
}

// CurrentPalette returns the palette modals are drawing with.
func CurrentPalette() Palette {
	return palette
}
