package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abapcodestudio/codestudio/internal/logger"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

// Router holds the active panel identifier and the sidebar-collapsed flag,
// and renders exactly one panel. Every panel is constructed up front so that
// live updates reach panels that are not currently shown.
type Router struct {
	active    panels.ID
	collapsed bool
	panels    map[panels.ID]panels.Panel
}

// NewRouter creates a router showing start. start must be a known panel.
func NewRouter(start panels.ID) *Router {
	if !start.Valid() {
		panic(fmt.Sprintf("ui: unknown start panel %q", start))
	}
	r := &Router{active: start, panels: make(map[panels.ID]panels.Panel)}
	for _, id := range panels.All() {
		r.panels[id] = panels.New(id)
	}
	return r
}

// Navigate makes id the active panel and reports whether it changed.
// Unknown identifiers are a programming error and panic.
func (r *Router) Navigate(id panels.ID) bool {
	if !id.Valid() {
		panic(fmt.Sprintf("ui: navigate to unknown panel %q", id))
	}
	if id == r.active {
		return false
	}
	logger.WithComponent("router").Debug("navigate", "from", r.active, "to", id)
	r.active = id
	return true
}

// ToggleSidebarCollapse flips the collapsed flag and returns the new value.
func (r *Router) ToggleSidebarCollapse() bool {
	r.collapsed = !r.collapsed
	return r.collapsed
}

// Active returns the active panel identifier.
func (r *Router) Active() panels.ID { return r.active }

// IsActive reports whether id is the active panel.
func (r *Router) IsActive(id panels.ID) bool { return r.active == id }

// Collapsed reports whether the sidebar is collapsed.
func (r *Router) Collapsed() bool { return r.collapsed }

// ActivePanel returns the active panel.
func (r *Router) ActivePanel() panels.Panel { return r.panels[r.active] }

// Panel returns the panel for id.
func (r *Router) Panel(id panels.ID) panels.Panel { return r.panels[id] }

// Update delivers msg to the active panel.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	return r.UpdatePanel(r.active, msg)
}

// UpdatePanel delivers msg to the panel for id, shown or not.
func (r *Router) UpdatePanel(id panels.ID, msg tea.Msg) tea.Cmd {
	p, ok := r.panels[id]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	r.panels[id], cmd = p.Update(msg)
	return cmd
}

// View renders the active panel.
func (r *Router) View(width, height int) string {
	return r.ActivePanel().View(width, height)
}
