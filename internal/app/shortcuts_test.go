package app

import (
	"testing"

	"github.com/abapcodestudio/codestudio/internal/ui/modals"
)

func TestExecuteShortcut_SidebarGuard(t *testing.T) {
	m := testModelWithSize(testConfig(), 120, 40)
	m.setFocus(FocusPanel)
	m.Router().Navigate("pipeline") // not a text panel, so keys reach shortcuts

	if _, _, ok := m.ExecuteShortcut("R"); ok {
		t.Error("R requires sidebar focus")
	}
	if m.modal.IsVisible() {
		t.Error("guarded shortcut should not open a modal")
	}

	if _, _, ok := m.ExecuteShortcut("L"); !ok {
		t.Error("L works from any focus")
	}
}

func TestExecuteShortcut_Unknown(t *testing.T) {
	m := testModel(testConfig(), "")
	if _, cmd, ok := m.ExecuteShortcut("x"); ok || cmd != nil {
		t.Error("unknown keys should propagate")
	}
}

func TestHelpSections(t *testing.T) {
	m := testModel(testConfig(), "")
	sections := m.helpSections()

	want := []string{CategoryNavigation, CategoryBackend, CategoryPanels, CategoryGeneral}
	if len(sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(sections))
	}
	for i, s := range sections {
		if s.Title != want[i] {
			t.Errorf("section %d = %q, want %q", i, s.Title, want[i])
		}
	}

	found := false
	for _, sc := range sections[len(sections)-1].Shortcuts {
		if sc == (modals.HelpShortcut{Key: "?", Desc: "Show this help"}) {
			found = true
		}
	}
	if !found {
		t.Error("help shortcut should be listed under General")
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tab", "tab"},
		{"ctrl+b", "ctrl+b"},
		{"L", "L"},
		{"?", "?"},
		{"1-9, 0", ""},
		{"ctrl+t", ""},
	}
	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.in); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFocusString(t *testing.T) {
	if FocusSidebar.String() != "Sidebar" || FocusPanel.String() != "Panel" || Focus(9).String() != "Unknown" {
		t.Error("unexpected Focus names")
	}
}
