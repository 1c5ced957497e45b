package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays visible
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient footer notice
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg drives flash expiry
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width          int
	bindings       []KeyBinding
	sidebarFocused bool
	activePanel    panels.ID
	flashMessage   *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		sidebarFocused: true,
		activePanel:    panels.Default,
		bindings: []KeyBinding{
			{Key: "tab", Desc: "focus panel"},
			{Key: "j/k", Desc: "move"},
			{Key: "enter", Desc: "open"},
			{Key: "1-0", Desc: "jump"},
			{Key: "ctrl+b", Desc: "collapse"},
			{Key: "L", Desc: "login"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused bool, active panels.ID) {
	f.sidebarFocused = sidebarFocused
	f.activePanel = active
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings for the sidebar context
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// panelBindings are shown while the content panel has focus
func panelBindings(id panels.ID) []KeyBinding {
	var b []KeyBinding
	switch id {
	case panels.Chat:
		b = []KeyBinding{{"enter", "send"}, {"alt+enter", "newline"}, {"ctrl+t", "model"}, {"pgup/dn", "scroll"}}
	case panels.Explorer:
		b = []KeyBinding{{"/", "filter"}, {"t", "type"}, {"c", "clear"}, {"r", "refresh"}, {"enter", "open"}}
	case panels.Diff:
		b = []KeyBinding{{"s", "diff/source"}, {"y", "copy"}, {"r", "review"}, {"j/k", "scroll"}}
	case panels.History:
		b = []KeyBinding{{"j/k", "select"}, {"y", "copy sha"}}
	case panels.Pricing:
		b = []KeyBinding{{"h/l", "compare"}}
	case panels.Pipeline, panels.Security:
	default:
		b = []KeyBinding{{"j/k", "scroll"}, {"pgup/dn", "page"}}
	}
	return append(b, KeyBinding{"tab", "sidebar"})
}

func (f *Footer) renderFlash() string {
	var icon string
	var c = ColorSecondary
	switch f.flashMessage.Type {
	case FlashError:
		icon, c = "✕", ColorError
	case FlashWarning:
		icon, c = "⚠", ColorWarning
	case FlashSuccess:
		icon, c = "✓", ColorSuccess
	default:
		icon = "ℹ"
	}
	content := lipgloss.NewStyle().Foreground(c).Bold(true).Render(icon + " " + f.flashMessage.Text)
	return FooterStyle.Width(f.width).Render(content)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	bindings := f.bindings
	if !f.sidebarFocused {
		bindings = panelBindings(f.activePanel)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
