package panels

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+t":
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func typeText(p Panel, text string) Panel {
	for _, r := range text {
		p, _ = p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return p
}

func TestAll(t *testing.T) {
	ids := All()
	if len(ids) != 10 {
		t.Fatalf("expected 10 panels, got %d", len(ids))
	}
	if ids[0] != Default {
		t.Errorf("first panel = %q, want %q", ids[0], Default)
	}

	ids[0] = "mutated"
	if All()[0] != Chat {
		t.Error("All() should return a copy")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"chat", Chat, true},
		{"pipeline", Pipeline, true},
		{"security", Security, true},
		{"Chat", "Chat", false},
		{"", "", false},
		{"settings", "settings", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSections(t *testing.T) {
	secs := Sections()
	wantNames := []string{"Workspace", "Documentation", "Business"}
	if len(secs) != len(wantNames) {
		t.Fatalf("expected %d sections, got %d", len(wantNames), len(secs))
	}

	var flat []ID
	for i, s := range secs {
		if s.Name != wantNames[i] {
			t.Errorf("section %d = %q, want %q", i, s.Name, wantNames[i])
		}
		for _, e := range s.Entries {
			if e.Label == "" || e.Icon == "" {
				t.Errorf("entry %q missing label or icon", e.ID)
			}
			flat = append(flat, e.ID)
		}
	}

	all := All()
	if len(flat) != len(all) {
		t.Fatalf("navigation lists %d entries, want %d", len(flat), len(all))
	}
	for i := range all {
		if flat[i] != all[i] {
			t.Errorf("entry %d = %q, want %q", i, flat[i], all[i])
		}
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	secs := Sections()
	secs[0].Name = "changed"
	secs[0].Entries[0].Label = "changed"

	again := Sections()
	if again[0].Name != "Workspace" || again[0].Entries[0].Label != "AI Chat" {
		t.Error("navigation tree was mutated through a returned copy")
	}
}

func TestEntry(t *testing.T) {
	e, ok := Entry(Diff)
	if !ok || e.Icon != "±" {
		t.Errorf("Entry(Diff) = %+v, %v", e, ok)
	}
	if _, ok := Entry("nope"); ok {
		t.Error("Entry should not find unknown ids")
	}
}

func TestNew(t *testing.T) {
	for _, id := range All() {
		p := New(id)
		if p.ID() != id {
			t.Errorf("New(%q).ID() = %q", id, p.ID())
		}
		if p.Title() == "" {
			t.Errorf("panel %q has no title", id)
		}
		if p.View(80, 24) == "" {
			t.Errorf("panel %q rendered nothing", id)
		}
	}
}

func TestNew_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown id")
		}
	}()
	New("settings")
}
