package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/ui"
	"github.com/abapcodestudio/codestudio/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for global shortcuts.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "L", "ctrl+b")
	DisplayKey      string                              // Display name in help; defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Only when the sidebar has focus
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryBackend    = "Backend"
	CategoryPanels     = "Panels"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategoryBackend,
	CategoryPanels,
	CategoryGeneral,
}

// ShortcutRegistry lists the executable global shortcuts. Entries here show
// up in the help modal and can be triggered from it.
var ShortcutRegistry = []Shortcut{
	{
		Key:         "tab",
		DisplayKey:  "Tab",
		Description: "Switch between sidebar and panel",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:         "ctrl+b",
		Description: "Collapse or expand the sidebar",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleSidebar,
	},
	{
		Key:         "L",
		Description: "Log in with an API token",
		Category:    CategoryBackend,
		Handler:     shortcutLogin,
	},
	{
		Key:             "R",
		Description:     "Register an SAP system",
		Category:        CategoryBackend,
		RequiresSidebar: true,
		Handler:         shortcutRegisterSystem,
	},
	{
		Key:             "T",
		Description:     "Choose a color theme",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutTheme,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "1-9, 0", Description: "Jump to panel", Category: CategoryNavigation},
	{DisplayKey: "↑/↓ or j/k", Description: "Move in lists", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open panel / send prompt", Category: CategoryNavigation},

	{DisplayKey: "ctrl+t", Description: "Chat: cycle model", Category: CategoryPanels},
	{DisplayKey: "alt+enter", Description: "Chat: new line", Category: CategoryPanels},
	{DisplayKey: "/", Description: "Explorer: filter objects", Category: CategoryPanels},
	{DisplayKey: "t / r", Description: "Explorer: type filter / reload", Category: CategoryPanels},
	{DisplayKey: "s / y / r", Description: "Diff: source, copy, review", Category: CategoryPanels},
}

// ExecuteShortcut finds and executes a shortcut by key. Digits jump straight
// to panels. Returns false when no shortcut applies so the key can propagate.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if id, ok := ui.ShortcutTarget(key); ok {
		return m, m.navigate(id), true
	}

	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.RequiresSidebar && m.focus != FocusSidebar {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections builds the help modal content from the registry.
func (m *Model) helpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	add := func(s Shortcut) {
		display := s.DisplayKey
		if display == "" {
			display = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  display,
			Desc: s.Description,
		})
	}

	for _, s := range DisplayOnlyShortcuts {
		if s.Category == CategoryNavigation {
			add(s)
		}
	}
	for _, s := range ShortcutRegistry {
		add(s)
	}
	add(helpShortcut)
	for _, s := range DisplayOnlyShortcuts {
		if s.Category != CategoryNavigation {
			add(s)
		}
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// handleHelpShortcutTrigger runs a shortcut chosen in the help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	key = normalizeHelpDisplayKey(key)
	if key == "" {
		return m, nil
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// normalizeHelpDisplayKey maps display labels back to key strings.
// Display-only entries map to "".
func normalizeHelpDisplayKey(key string) string {
	if key == "Tab" {
		return "tab"
	}
	for _, s := range ShortcutRegistry {
		if s.Key == key {
			return key
		}
	}
	if key == helpShortcut.Key {
		return key
	}
	return ""
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleFocus()
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.toggleSidebar()
	return m, nil
}

func shortcutLogin(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewLoginState(m.client.BaseURL(), m.client.Credential() != ""))
	return m, nil
}

func shortcutRegisterSystem(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewRegisterSystemState())
	return m, nil
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
	}
	m.modal.Show(modals.NewThemePickerState(themes, string(ui.CurrentThemeName())))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpStateFromSections(m.helpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.quit()
}
