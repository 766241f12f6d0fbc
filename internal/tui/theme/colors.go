// Package theme holds the TUI palette, initialized from the configured color scheme
package theme

import (
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	Today          string
	Critical       string
	Soon           string
	StatusBarBg    string
	StatusBarText  string

	statusColors = map[models.Status]string{}
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Today = colors.Today
	Critical = colors.Critical
	Soon = colors.Soon
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText

	statusColors = map[models.Status]string{
		models.StatusIdea:        colors.StatusIdea,
		models.StatusInProgress:  colors.StatusInProgress,
		models.StatusReviewReady: colors.StatusReviewReady,
		models.StatusApproved:    colors.StatusApproved,
	}
}

// StatusColor returns the badge color of a status
func StatusColor(s models.Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return Subtle
}
