// Package panels implements the content views of the studio. Each panel is a
// variant of the sealed Panel interface; the set of identifiers is fixed at
// compile time and the navigation tree built from it is read-only.
package panels

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
)

// ID identifies one of the ten content panels.
type ID string

const (
	Chat         ID = "chat"
	Explorer     ID = "explorer"
	Diff         ID = "diff"
	History      ID = "history"
	Pipeline     ID = "pipeline"
	Architecture ID = "architecture"
	Setup        ID = "setup"
	API          ID = "api"
	Pricing      ID = "pricing"
	Security     ID = "security"
)

// Default is the panel shown at startup.
const Default = Chat

var ids = []ID{Chat, Explorer, Diff, History, Pipeline, Architecture, Setup, API, Pricing, Security}

// All returns every panel identifier in navigation order.
func All() []ID {
	return slices.Clone(ids)
}

// Valid reports whether id names a panel.
func (id ID) Valid() bool {
	return slices.Contains(ids, id)
}

// Parse converts a configured panel name to an ID.
func Parse(s string) (ID, bool) {
	id := ID(s)
	return id, id.Valid()
}

// NavEntry is one row in the navigation sidebar.
type NavEntry struct {
	Label string
	Icon  string
	ID    ID
}

// NavSection groups entries under a heading.
type NavSection struct {
	Name    string
	Entries []NavEntry
}

var sections = []NavSection{
	{Name: "Workspace", Entries: []NavEntry{
		{Label: "AI Chat", Icon: "◆", ID: Chat},
		{Label: "Object Explorer", Icon: "▤", ID: Explorer},
		{Label: "Diff Viewer", Icon: "±", ID: Diff},
		{Label: "Git History", Icon: "◷", ID: History},
		{Label: "Pipeline", Icon: "▶", ID: Pipeline},
	}},
	{Name: "Documentation", Entries: []NavEntry{
		{Label: "Architecture", Icon: "◫", ID: Architecture},
		{Label: "Setup Guide", Icon: "⚙", ID: Setup},
		{Label: "API Reference", Icon: "⇄", ID: API},
	}},
	{Name: "Business", Entries: []NavEntry{
		{Label: "Pricing", Icon: "$", ID: Pricing},
		{Label: "Security", Icon: "◉", ID: Security},
	}},
}

// Sections returns a copy of the navigation tree.
func Sections() []NavSection {
	out := make([]NavSection, len(sections))
	for i, s := range sections {
		out[i] = NavSection{Name: s.Name, Entries: slices.Clone(s.Entries)}
	}
	return out
}

// Entry returns the navigation entry for id.
func Entry(id ID) (NavEntry, bool) {
	for _, s := range sections {
		for _, e := range s.Entries {
			if e.ID == id {
				return e, true
			}
		}
	}
	return NavEntry{}, false
}

// Panel is a discriminated union of the content views. The marker method
// restricts implementations to this package.
type Panel interface {
	panel()
	ID() ID
	Title() string
	Update(msg tea.Msg) (Panel, tea.Cmd)
	View(width, height int) string
}

// Focusable is implemented by panels that own a text input.
type Focusable interface {
	Panel
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// New constructs the panel for id. Unknown identifiers are a programming
// error and panic.
func New(id ID) Panel {
	switch id {
	case Chat:
		return NewChatPanel()
	case Explorer:
		return NewExplorerPanel(sampleObjects)
	case Diff:
		return NewDiffPanel(sampleDiff)
	case History:
		return NewHistoryPanel(sampleCommits)
	case Pipeline:
		return NewPipelinePanel(sampleRun)
	case Architecture:
		return NewDocPanel(Architecture, "Architecture", architectureDoc)
	case Setup:
		return NewDocPanel(Setup, "Setup Guide", setupDoc)
	case API:
		return NewDocPanel(API, "API Reference", apiDoc)
	case Pricing:
		return NewPricingPanel(sampleTiers)
	case Security:
		return NewSecurityPanel(securityControls)
	}
	panic(fmt.Sprintf("panels: unknown panel %q", id))
}
