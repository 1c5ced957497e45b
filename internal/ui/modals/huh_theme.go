package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/abapcodestudio/codestudio/internal/keys"
)

// newForm builds a single-group form of the given width styled for a modal,
// initialized so the first render is complete.
func newForm(width int, fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithLayout(huh.LayoutStack).
		WithWidth(width)
	form.Init()
	return form
}

// huhFormUpdate forwards msg to form. Enter and Esc belong to the app's modal
// handlers (submit and cancel), so the form never sees them.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if s := key.String(); s == keys.Enter || s == keys.Escape {
			return form, nil
		}
	}
	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// ModalTheme is a huh theme built from the current palette. Forms only use
// inputs and selects, so only those styles are set.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		fg := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(palette.Primary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = fg(palette.Text).Bold(true)
		t.Focused.Description = fg(palette.Muted)
		t.Focused.ErrorIndicator = fg(palette.Warning).SetString(" !")
		t.Focused.ErrorMessage = fg(palette.Warning)

		t.Focused.SelectSelector = fg(palette.Primary).SetString("▸ ")
		t.Focused.Option = fg(palette.Text)
		t.Focused.NextIndicator = fg(palette.Primary).MarginLeft(1).SetString("›")
		t.Focused.PrevIndicator = fg(palette.Primary).MarginRight(1).SetString("‹")

		t.Focused.TextInput.Cursor = fg(palette.Primary)
		t.Focused.TextInput.Prompt = fg(palette.Primary)
		t.Focused.TextInput.Placeholder = fg(palette.Muted)
		t.Focused.TextInput.Text = fg(palette.Text)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = fg(palette.Muted)
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
