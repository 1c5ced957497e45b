package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const helpKeyColumn = 16

// helpEntry is one row of the help list: a section header when header is
// set, a triggerable shortcut otherwise. Headers never match a filter.
type helpEntry struct {
	header   string
	count    int
	shortcut HelpShortcut
}

func (e helpEntry) FilterValue() string {
	if e.header != "" {
		return ""
	}
	return e.shortcut.Key + " " + e.shortcut.Desc
}

// helpRows draws entries with styles taken from the palette at construction.
type helpRows struct {
	header, key, desc, keySel, descSel lipgloss.Style
}

func newHelpRows() helpRows {
	sel := lipgloss.NewStyle().Foreground(palette.Inverse).Background(palette.Primary)
	return helpRows{
		header:  lipgloss.NewStyle().Bold(true).Foreground(palette.Secondary),
		key:     lipgloss.NewStyle().Bold(true).Foreground(palette.Primary).Width(helpKeyColumn),
		desc:    lipgloss.NewStyle().Foreground(palette.Text),
		keySel:  sel.Bold(true).Width(helpKeyColumn),
		descSel: sel,
	}
}

func (helpRows) Height() int                         { return 1 }
func (helpRows) Spacing() int                        { return 0 }
func (helpRows) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (r helpRows) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(helpEntry)
	if !ok {
		return
	}
	if e.header != "" {
		fmt.Fprintf(w, "%s %s", r.header.Render(e.header), r.desc.Faint(true).Render(fmt.Sprintf("(%d)", e.count)))
		return
	}
	if index == m.Index() {
		fmt.Fprint(w, "> "+r.keySel.Render(e.shortcut.Key)+r.descSel.Render(e.shortcut.Desc))
		return
	}
	fmt.Fprint(w, "  "+r.key.Render(e.shortcut.Key)+r.desc.Render(e.shortcut.Desc))
}

// HelpState lists every shortcut grouped by section. The list can be
// filtered with "/" and Enter triggers the selected shortcut.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: move  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		palette.Title.Render(s.Title()),
		s.list.View(),
		palette.Help.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize leaves room for the title and help lines.
func (s *HelpState) SetSize(width, height int) {
	s.list.SetSize(width, max(height-4, 1))
}

// SelectedShortcut returns the highlighted shortcut. ok is false when a
// section header is highlighted or the list is empty.
func (s *HelpState) SelectedShortcut() (HelpShortcut, bool) {
	e, ok := s.list.SelectedItem().(helpEntry)
	if !ok || e.header != "" {
		return HelpShortcut{}, false
	}
	return e.shortcut, true
}

// IsFiltering reports whether the filter prompt is taking input.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections builds the help list with the first shortcut
// highlighted.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	first := -1
	for _, sec := range sections {
		items = append(items, helpEntry{header: sec.Title, count: len(sec.Shortcuts)})
		for _, sc := range sec.Shortcuts {
			if first < 0 {
				first = len(items)
			}
			items = append(items, helpEntry{shortcut: sc})
		}
	}

	l := list.New(items, newHelpRows(), palette.Width, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	if first >= 0 {
		l.Select(first)
	}
	return &HelpState{list: l}
}
