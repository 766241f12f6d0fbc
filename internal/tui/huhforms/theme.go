// Package huhforms builds the huh forms used by the TUI
package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/config"
)

// formPalette is the part of the color scheme the create-content form uses
type formPalette struct {
	accent  color.Color
	picked  color.Color
	muted   color.Color
	text    color.Color
	danger  color.Color
	heading color.Color
}

func newFormPalette(cs config.ColorScheme) formPalette {
	return formPalette{
		accent:  lipgloss.Color(cs.Accent),
		picked:  lipgloss.Color(cs.Create),
		muted:   lipgloss.Color(cs.Subtle),
		text:    lipgloss.Color(cs.Normal),
		danger:  lipgloss.Color(cs.Delete),
		heading: lipgloss.Color(cs.Title),
	}
}

// CreatePlanoTheme colors the create-content form with the configured scheme.
// Ticked platforms show in the create color.
func CreatePlanoTheme(colorScheme config.ColorScheme) huh.Theme {
	colorScheme.ApplyDefaults()
	p := newFormPalette(colorScheme)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		f := &t.Focused

		f.Base = f.Base.BorderForeground(p.accent)
		f.Title = f.Title.Foreground(p.heading).Bold(true)
		f.Description = f.Description.Foreground(p.muted)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(p.danger)
		f.ErrorMessage = f.ErrorMessage.Foreground(p.danger)

		// platform and content type pickers
		f.SelectSelector = f.SelectSelector.Foreground(p.accent)
		f.MultiSelectSelector = f.MultiSelectSelector.Foreground(p.accent)
		f.SelectedOption = f.SelectedOption.Foreground(p.picked)
		f.SelectedPrefix = f.SelectedPrefix.Foreground(p.picked)
		f.UnselectedOption = f.UnselectedOption.Foreground(p.text)
		f.UnselectedPrefix = f.UnselectedPrefix.Foreground(p.muted)

		// confirm buttons
		f.FocusedButton = f.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.accent).
			Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(p.text).Background(p.muted)

		// title, date and time inputs
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.muted)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.accent)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(p.muted)

		return t
	})
}
