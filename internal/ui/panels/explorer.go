package panels

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/abapcodestudio/codestudio/internal/keys"
	"github.com/abapcodestudio/codestudio/internal/studio"
)

// objectSource adapts a catalog slice for fuzzy matching on object names.
type objectSource []studio.Object

func (s objectSource) String(i int) string { return s[i].Name }
func (s objectSource) Len() int            { return len(s) }

// ExplorerPanel lists catalog objects with a fuzzy name filter and an object
// type filter.
type ExplorerPanel struct {
	objects   []studio.Object
	visible   []studio.Object
	filter    textinput.Model
	filtering bool
	typeIdx   int // 0 is all types, otherwise index+1 into studio.ObjectTypes
	cursor    int
	offset    int
	loadErr   string
}

func (*ExplorerPanel) panel() {}

// NewExplorerPanel creates an explorer over objects.
func NewExplorerPanel(objects []studio.Object) *ExplorerPanel {
	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.Prompt = "/ "
	ti.CharLimit = 40

	p := &ExplorerPanel{filter: ti}
	p.SetObjects(objects)
	return p
}

func (p *ExplorerPanel) ID() ID        { return Explorer }
func (p *ExplorerPanel) Title() string { return "Object Explorer" }

// CapturesInput reports whether the filter input is being edited.
func (p *ExplorerPanel) CapturesInput() bool { return p.filtering }

// SetObjects replaces the catalog.
func (p *ExplorerPanel) SetObjects(objects []studio.Object) {
	p.objects = slices.Clone(objects)
	p.loadErr = ""
	p.apply()
}

// SetFilter sets the name filter, as when a chat prompt mentions an object.
func (p *ExplorerPanel) SetFilter(filter string) {
	p.filter.SetValue(filter)
	p.apply()
}

// Filter returns the current name filter.
func (p *ExplorerPanel) Filter() string { return p.filter.Value() }

// TypeFilter returns the selected object type, or "" for all types.
func (p *ExplorerPanel) TypeFilter() studio.ObjectType {
	if p.typeIdx == 0 {
		return ""
	}
	return studio.ObjectTypes()[p.typeIdx-1]
}

// Visible returns the objects that pass both filters, best match first.
func (p *ExplorerPanel) Visible() []studio.Object {
	return slices.Clone(p.visible)
}

// Selected returns the object under the cursor.
func (p *ExplorerPanel) Selected() (studio.Object, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return studio.Object{}, false
	}
	return p.visible[p.cursor], true
}

func (p *ExplorerPanel) apply() {
	typ := p.TypeFilter()
	var candidates objectSource
	for _, o := range p.objects {
		if typ == "" || o.Type == typ {
			candidates = append(candidates, o)
		}
	}

	pattern := strings.TrimSuffix(strings.TrimSpace(p.filter.Value()), "*")
	if pattern == "" {
		p.visible = candidates
	} else {
		matches := fuzzy.FindFrom(strings.ToUpper(pattern), candidates)
		p.visible = make([]studio.Object, 0, len(matches))
		for _, m := range matches {
			p.visible = append(p.visible, candidates[m.Index])
		}
	}
	if p.cursor >= len(p.visible) {
		p.cursor = max(len(p.visible)-1, 0)
	}
}

func (p *ExplorerPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case ObjectsLoadedMsg:
		if msg.Err != nil {
			p.loadErr = msg.Err.Error()
			return p, nil
		}
		p.SetObjects(msg.Objects)
		return p, nil

	case tea.KeyPressMsg:
		if p.filtering {
			return p, p.updateFilter(msg)
		}
		switch msg.String() {
		case "k", keys.Up:
			if p.cursor > 0 {
				p.cursor--
			}
		case "j", keys.Down:
			if p.cursor < len(p.visible)-1 {
				p.cursor++
			}
		case "/":
			p.filtering = true
			return p, p.filter.Focus()
		case "t":
			p.typeIdx = (p.typeIdx + 1) % (len(studio.ObjectTypes()) + 1)
			p.apply()
		case "c":
			p.typeIdx = 0
			p.SetFilter("")
		case "r":
			typ := p.TypeFilter()
			return p, func() tea.Msg { return RefreshObjectsMsg{Type: typ} }
		case keys.Enter:
			if o, ok := p.Selected(); ok {
				return p, func() tea.Msg { return ObjectSelectedMsg{Object: o} }
			}
		}
	}
	return p, nil
}

func (p *ExplorerPanel) updateFilter(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		p.filtering = false
		p.filter.Blur()
		p.SetFilter("")
		return nil
	case keys.Enter:
		p.filtering = false
		p.filter.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.apply()
	return cmd
}

func (p *ExplorerPanel) View(width, height int) string {
	typ := "all types"
	if t := p.TypeFilter(); t != "" {
		typ = string(t)
	}
	header := fmt.Sprintf("%d of %d objects · %s · / filter · t type · r refresh", len(p.visible), len(p.objects), typ)

	lines := []string{TitleStyle.Render(p.Title()), MutedStyle.Render(header)}
	if p.filtering || p.filter.Value() != "" {
		lines = append(lines, p.filter.View())
	}
	if p.loadErr != "" {
		lines = append(lines, ErrorStyle.Render(p.loadErr))
	}

	listHeight := max(height-len(lines)-2, 1)
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+listHeight {
		p.offset = p.cursor - listHeight + 1
	}

	if len(p.visible) == 0 {
		lines = append(lines, MutedStyle.Italic(true).Render("No matching objects."))
	}
	for i := p.offset; i < len(p.visible) && i < p.offset+listHeight; i++ {
		o := p.visible[i]
		row := fmt.Sprintf("%-4s %-28s %-12s %s", o.Type, o.Name, o.Package, o.Description)
		if o.AIGenerated {
			row += " ✦"
		}
		row = ansi.Truncate(row, max(width-2, 1), "…")
		style := ItemStyle
		if i == p.cursor {
			style = SelectedStyle
		}
		lines = append(lines, style.Width(width).Render(row))
	}

	if o, ok := p.Selected(); ok {
		status := string(o.Status)
		if o.ReviewStatus != "" {
			status += ", review " + string(o.ReviewStatus)
		}
		lines = append(lines, "", lipgloss.NewStyle().Foreground(ColorSecondary).Render(
			fmt.Sprintf("%s  %d lines  %s", o.Name, o.LineCount, status)))
	}
	return strings.Join(lines, "\n")
}
