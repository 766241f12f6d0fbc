// Package styles holds the lipgloss styles used by human-readable CLI output.
// Styles are plain until Init is called, so command output in tests and pipes
// stays free of escape codes.
package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/deadline"
	"github.com/thenoetrevino/plano/internal/markdown"
	"github.com/thenoetrevino/plano/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Scheduled:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Result styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style

	statusStyles  = map[models.Status]lipgloss.Style{}
	urgencyStyles = map[deadline.Urgency]lipgloss.Style{}

	enabled bool
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()
	enabled = true

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Delete))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Soon))

	badge := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
	}
	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusIdea:        badge(colors.StatusIdea),
		models.StatusInProgress:  badge(colors.StatusInProgress),
		models.StatusReviewReady: badge(colors.StatusReviewReady),
		models.StatusApproved:    badge(colors.StatusApproved),
	}
	urgencyStyles = map[deadline.Urgency]lipgloss.Style{
		deadline.UrgencyCritical: badge(colors.Critical),
		deadline.UrgencySoon:     badge(colors.Soon),
		deadline.UrgencyNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Normal)),
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if !enabled || hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatus renders a status as a colored badge
func RenderStatus(s models.Status) string {
	return statusStyles[s].Render(s.Title())
}

// RenderUrgency renders a deadline label in its urgency color
func RenderUrgency(d deadline.Deadline) string {
	return urgencyStyles[d.Urgency()].Render(d.Label())
}

// RenderPlatforms renders platforms as "[tiktok] [instagram]" chips in brand colors
func RenderPlatforms(platforms []models.Platform) string {
	chips := make([]string, len(platforms))
	for i, p := range platforms {
		chips[i] = ColoredText("["+string(p)+"]", p.Color())
	}
	return strings.Join(chips, " ")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	if !enabled {
		return content
	}
	return CardStyle.Render(content)
}

// MarkdownStyle returns the glamour style matching the current styling mode
func MarkdownStyle() string {
	if !enabled {
		return markdown.StylePlain
	}
	return markdown.StyleAuto
}
