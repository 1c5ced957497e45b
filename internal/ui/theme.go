package ui

import "github.com/abapcodestudio/codestudio/internal/logger"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string
	TextMuted   string
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	User      string // User prompts in chat
	Assistant string // Assistant replies in chat
	Success   string
	Warning   string
	Error     string

	// Border colors
	Border      string
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Diff colors
	DiffAdded   string
	DiffRemoved string
	DiffHeader  string
	DiffHunk    string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeHorizon    ThemeName = "horizon"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		User:        "#A78BFA",
		Assistant:   "#22D3EE",
		Success:     "#10B981",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Border:      "#374151",
		DiffAdded:   "#4ADE80",
		DiffRemoved: "#F87171",
		DiffHeader:  "#60A5FA",
		DiffHunk:    "#C084FC",
	},
	ThemeHorizon: {
		Name:        "Horizon",
		Primary:     "#0070F2",
		Secondary:   "#1B90FF",
		Bg:          "#12171C",
		BgSelected:  "#0A3D7A",
		Text:        "#EAECEE",
		TextMuted:   "#8396A8",
		TextInverse: "#12171C",
		User:        "#89D1FF",
		Assistant:   "#5DC122",
		Success:     "#30914C",
		Warning:     "#E76500",
		Error:       "#FA6161",
		Border:      "#2C3E50",
		DiffAdded:   "#5DC122",
		DiffRemoved: "#FA6161",
		DiffHeader:  "#1B90FF",
		DiffHunk:    "#B894FF",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		User:        "#A3BE8C",
		Assistant:   "#88C0D0",
		Success:     "#A3BE8C",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Border:      "#4C566A",
		DiffAdded:   "#A3BE8C",
		DiffRemoved: "#BF616A",
		DiffHeader:  "#81A1C1",
		DiffHunk:    "#B48EAD",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		User:        "#FF79C6",
		Assistant:   "#8BE9FD",
		Success:     "#50FA7B",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Border:      "#44475A",
		DiffAdded:   "#50FA7B",
		DiffRemoved: "#FF5555",
		DiffHeader:  "#8BE9FD",
		DiffHunk:    "#BD93F9",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		User:        "#FABD2F",
		Assistant:   "#83A598",
		Success:     "#B8BB26",
		Warning:     "#FE8019",
		Error:       "#FB4934",
		Border:      "#504945",
		DiffAdded:   "#B8BB26",
		DiffRemoved: "#FB4934",
		DiffHeader:  "#83A598",
		DiffHunk:    "#D3869B",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		User:        "#7C3AED",
		Assistant:   "#0891B2",
		Success:     "#16A34A",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		DiffAdded:   "#16A34A",
		DiffRemoved: "#DC2626",
		DiffHeader:  "#2563EB",
		DiffHunk:    "#7C3AED",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeHorizon,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeLight,
	}
}

// ResolveTheme maps a configured theme name to a known theme. Unknown names
// resolve to DefaultTheme with ok false.
func ResolveTheme(name string) (ThemeName, bool) {
	if _, ok := BuiltinThemes[ThemeName(name)]; ok {
		return ThemeName(name), true
	}
	return DefaultTheme, false
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		logger.WithComponent("ui").Warn("unknown theme, using default", "theme", name, "default", DefaultTheme)
		name = DefaultTheme
	}
	currentTheme = BuiltinThemes[name]
	currentThemeName = name
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}
