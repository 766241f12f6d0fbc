package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/deadline"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// RenderDeadlines lists upcoming deadlines with urgency badges
//
//	Today       Product Feature Highlight  2024-01-10 11:00
//	In 2 days   Team Introduction          2024-01-12 10:00
func RenderDeadlines(deadlines []deadline.Deadline, selected, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Upcoming Deadlines") + "\n\n")

	if len(deadlines) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("Nothing scheduled from today on"))
		return b.String()
	}

	for i, d := range deadlines {
		badge := UrgencyStyle(d.Urgency()).Render(cell(d.Label(), 11))
		when := strings.TrimSpace(d.Item.ScheduledDate + " " + d.Item.ScheduledTime)
		row := []string{badge, cell(d.Item.Title, 30), SubtleStyle.Render(cell(when, 17)), RenderPlatformChips(d.Item.Platforms, "")}
		b.WriteString(renderRow(row, i == selected, width) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// UrgencyStyle returns the badge style of an urgency variant
func UrgencyStyle(u deadline.Urgency) lipgloss.Style {
	switch u {
	case deadline.UrgencyCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Critical))
	case deadline.UrgencySoon:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Soon))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	}
}
