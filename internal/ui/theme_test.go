package ui

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/ui/modals"
	"github.com/abapcodestudio/codestudio/internal/ui/panels"
)

func TestThemeNames_AllBuiltin(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Errorf("ThemeNames lists %d themes, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	for _, n := range names {
		th, ok := BuiltinThemes[n]
		if !ok {
			t.Errorf("theme %q not in BuiltinThemes", n)
			continue
		}
		for field, v := range map[string]string{
			"Primary": th.Primary, "Text": th.Text, "Bg": th.Bg, "Success": th.Success,
			"Error": th.Error, "DiffAdded": th.DiffAdded, "DiffRemoved": th.DiffRemoved,
		} {
			if v == "" {
				t.Errorf("theme %q has empty %s", n, field)
			}
		}
	}
}

func TestResolveTheme(t *testing.T) {
	if name, ok := ResolveTheme("nord"); !ok || name != ThemeNord {
		t.Errorf("ResolveTheme(nord) = %q, %v", name, ok)
	}
	if name, ok := ResolveTheme("solarized"); ok || name != DefaultTheme {
		t.Errorf("ResolveTheme(solarized) = %q, %v", name, ok)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeDracula)
	if CurrentThemeName() != ThemeDracula {
		t.Errorf("CurrentThemeName = %q", CurrentThemeName())
	}
	if CurrentTheme().Name != "Dracula" {
		t.Errorf("CurrentTheme = %q", CurrentTheme().Name)
	}
	if ColorPrimary != lipgloss.Color(BuiltinThemes[ThemeDracula].Primary) {
		t.Error("ColorPrimary not regenerated")
	}
	if panels.ColorPrimary != ColorPrimary {
		t.Error("panel styles not refreshed")
	}
	if modals.CurrentPalette().Primary != ColorPrimary {
		t.Error("modal styles not refreshed")
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	SetThemeByName("does-not-exist")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestTheme_Defaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" || th.GetBorderFocus() != "#111111" {
		t.Error("empty BgSelected/BorderFocus should default to Primary")
	}
	th.BgSelected, th.BorderFocus = "#222222", "#333333"
	if th.GetBgSelected() != "#222222" || th.GetBorderFocus() != "#333333" {
		t.Error("explicit BgSelected/BorderFocus should win")
	}
}
