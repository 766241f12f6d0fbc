package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// RenderCard renders a single content item as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}                  ┃
//	┃ ● Status   Jan 05 07:00  ┃
//	┃ [tiktok] [instagram]     ┃
//	┃ Assignee · 2 comments    ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// The border takes the primary platform's brand color.
func RenderCard(item models.ContentItem, selected bool) string {
	bg := theme.CardBg
	if selected {
		bg = theme.SelectedBg
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))

	title := base.Bold(true).Render(" " + truncate.StringWithTail(item.Title, cardTitleMaxWidth, "…"))
	if strings.TrimSpace(item.Title) == "" {
		title = base.Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render(" untitled")
	}

	lines := []string{
		title,
		" " + renderCardSchedule(item, base),
		" " + RenderPlatformChips(item.Platforms, bg),
		" " + renderCardFooter(item, base),
	}

	border := theme.CardBorder
	if p, ok := item.PrimaryPlatform(); ok && p.Color() != "" {
		border = p.Color()
	}
	if selected {
		border = theme.SelectedBorder
	}

	style := CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(strings.Join(lines, "\n"))
}

// RenderStatusBadge renders "● Status" in the status color
func RenderStatusBadge(s models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusColor(s))).
		Render("● " + s.Title())
}

func renderCardSchedule(item models.ContentItem, base lipgloss.Style) string {
	badge := base.Foreground(lipgloss.Color(theme.StatusColor(item.Status))).Render("● " + item.Status.Title())

	when := "unscheduled"
	if item.ScheduledDate != "" {
		when = strings.TrimSpace(item.ScheduledDate + " " + item.ScheduledTime)
	}
	return badge + base.Foreground(lipgloss.Color(theme.Subtle)).Render("  "+when)
}

func renderCardFooter(item models.ContentItem, base lipgloss.Style) string {
	parts := []string{}
	if item.Assignee.Name != "" {
		parts = append(parts, item.Assignee.Name)
	}
	if item.Comments > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", item.Comments))
	}
	if item.ContentType != "" {
		parts = append(parts, item.ContentType)
	}
	if len(parts) == 0 {
		return base.Foreground(lipgloss.Color(theme.Subtle)).Italic(true).Render("unassigned")
	}
	line := truncate.StringWithTail(strings.Join(parts, " · "), cardTitleMaxWidth, "…")
	return base.Foreground(lipgloss.Color(theme.Subtle)).Render(line)
}

// RenderPlatformChips renders platforms as colored chips, with the brand color
// as background. An empty bg leaves the gaps transparent.
func RenderPlatformChips(platforms []models.Platform, bg string) string {
	base := lipgloss.NewStyle()
	if bg != "" {
		base = base.Background(lipgloss.Color(bg))
	}

	if len(platforms) == 0 {
		return base.
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("no platforms")
	}

	spacer := base.Render(" ")
	chips := make([]string, len(platforms))
	for i, p := range platforms {
		chips[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(p.Color())).
			Render(string(p))
	}
	return strings.Join(chips, spacer)
}
