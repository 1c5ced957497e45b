package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// NavigateMsg asks the router to show a panel.
type NavigateMsg struct {
	ID panels.ID
}

// shortcutKeys are the digit shortcuts in navigation order.
var shortcutKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// ShortcutTarget returns the panel a digit key jumps to.
func ShortcutTarget(key string) (panels.ID, bool) {
	ids := panels.All()
	for i, k := range shortcutKeys {
		if k == key && i < len(ids) {
			return ids[i], true
		}
	}
	return "", false
}

// Sidebar represents the left navigation panel
type Sidebar struct {
	sections  []panels.NavSection
	entries   []panels.NavEntry // flat, in display order
	cursor    int
	active    panels.ID
	collapsed bool
	focused   bool
	width     int
	height    int
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	s := &Sidebar{sections: panels.Sections(), active: panels.Default, focused: true}
	for _, sec := range s.sections {
		s.entries = append(s.entries, sec.Entries...)
	}
	return s
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets whether the sidebar has keyboard focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns whether the sidebar has keyboard focus
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetCollapsed switches to the icon-only layout
func (s *Sidebar) SetCollapsed(collapsed bool) {
	s.collapsed = collapsed
}

// SetActive marks the active panel and moves the cursor to it
func (s *Sidebar) SetActive(id panels.ID) {
	s.active = id
	for i, e := range s.entries {
		if e.ID == id {
			s.cursor = i
			return
		}
	}
}

// Cursor returns the entry under the cursor
func (s *Sidebar) Cursor() panels.NavEntry {
	return s.entries[s.cursor]
}

// Update handles navigation keys. Selecting an entry emits NavigateMsg.
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch k := key.String(); k {
	case "k", keys.Up:
		if s.cursor > 0 {
			s.cursor--
		}
	case "j", keys.Down:
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case keys.Home, "g":
		s.cursor = 0
	case keys.End, "G":
		s.cursor = len(s.entries) - 1
	case keys.Enter, keys.Space:
		return s, navigate(s.Cursor().ID)
	default:
		if id, ok := ShortcutTarget(k); ok {
			return s, navigate(id)
		}
	}
	return s, nil
}

func navigate(id panels.ID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{ID: id} }
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := max(ctx.InnerWidth(s.width), 1)
	var lines []string
	n := 0
	for si, sec := range s.sections {
		if si > 0 {
			lines = append(lines, "")
		}
		if !s.collapsed {
			lines = append(lines, SidebarSectionStyle.Render(runewidth.Truncate(sec.Name, innerWidth, "…")))
		}
		for _, e := range sec.Entries {
			lines = append(lines, s.renderEntry(n, e, innerWidth))
			n++
		}
	}

	content := strings.Join(lines, "\n")
	return style.Width(s.width).Height(s.height).Render(content)
}

func (s *Sidebar) renderEntry(idx int, e panels.NavEntry, width int) string {
	marker := " "
	if e.ID == s.active {
		marker = "▌"
	}

	var text string
	if s.collapsed {
		text = fmt.Sprintf("%s%s %s", marker, shortcutKeys[idx], e.Icon)
	} else {
		text = fmt.Sprintf("%s%s %s %s", marker, shortcutKeys[idx], e.Icon, e.Label)
	}
	text = runewidth.FillRight(runewidth.Truncate(text, width, "…"), width)

	switch {
	case s.focused && idx == s.cursor:
		return SidebarSelectedStyle.Render(text)
	case e.ID == s.active:
		return SidebarActiveStyle.Render(text)
	}
	return SidebarItemStyle.Render(text)
}
