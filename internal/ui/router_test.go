package ui

import (
	"testing"

	"github.com/abapcodestudio/codestudio/internal/studio"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

func TestNewRouter_Defaults(t *testing.T) {
	r := NewRouter(panels.Default)
	if r.Active() != panels.Chat {
		t.Errorf("Active = %q, want chat", r.Active())
	}
	if r.Collapsed() {
		t.Error("sidebar should start expanded")
	}
	for _, id := range panels.All() {
		if r.Panel(id) == nil {
			t.Errorf("panel %q not constructed", id)
		}
	}
}

func TestRouter_NavigateEveryPanel(t *testing.T) {
	r := NewRouter(panels.Default)

	for _, id := range panels.All() {
		r.Navigate(id)
		for _, other := range panels.All() {
			if got := r.IsActive(other); got != (other == id) {
				t.Errorf("after Navigate(%q): IsActive(%q) = %v", id, other, got)
			}
		}
		if r.Active() != id || r.ActivePanel().ID() != id {
			t.Errorf("after Navigate(%q): Active = %q, panel = %q", id, r.Active(), r.ActivePanel().ID())
		}
	}
}

func TestRouter_NavigateReportsChange(t *testing.T) {
	r := NewRouter(panels.Chat)
	if r.Navigate(panels.Chat) {
		t.Error("navigating to the active panel should report no change")
	}
	if !r.Navigate(panels.Diff) {
		t.Error("navigating to another panel should report a change")
	}
}

func TestRouter_NavigateUnknownPanics(t *testing.T) {
	r := NewRouter(panels.Chat)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown panel")
		}
		if r.Active() != panels.Chat {
			t.Error("active panel should be unchanged")
		}
	}()
	r.Navigate("settings")
}

func TestNewRouter_UnknownStartPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown start panel")
		}
	}()
	NewRouter("settings")
}

func TestRouter_ToggleSidebarCollapse(t *testing.T) {
	r := NewRouter(panels.Pipeline)
	original := r.Collapsed()

	if got := r.ToggleSidebarCollapse(); got == original {
		t.Error("first toggle should flip the flag")
	}
	if got := r.ToggleSidebarCollapse(); got != original {
		t.Error("second toggle should restore the flag")
	}
	if r.Collapsed() != original {
		t.Error("Collapsed should match the original value after two toggles")
	}
	if r.Active() != panels.Pipeline {
		t.Error("collapse should not touch the active panel")
	}
}

func TestRouter_UpdatePanelReachesHiddenPanels(t *testing.T) {
	r := NewRouter(panels.Chat)

	step := studio.PipelineStep{Name: "syntax", Status: studio.StepFail}
	r.UpdatePanel(panels.Pipeline, panels.PipelineStepMsg{SessionID: "s-1", Step: step})

	p := r.Panel(panels.Pipeline).(*panels.PipelinePanel)
	if run := p.Run(); run.SessionID != "s-1" || len(run.Steps) != 1 {
		t.Errorf("hidden pipeline panel not updated: %+v", run)
	}
	if r.Active() != panels.Chat {
		t.Error("updating a hidden panel should not navigate")
	}
}

func TestRouter_View(t *testing.T) {
	r := NewRouter(panels.Security)
	if out := stripANSI(r.View(80, 20)); out == "" {
		t.Error("View should render the active panel")
	}
}
