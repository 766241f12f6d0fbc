package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// feedPostHeight is the number of lines a post takes before its description
const feedPostHeight = 3

// RenderFeed renders items as social posts
//
//	▌ Product Launch Teaser
//	▌ 2024-01-15 09:00 · Anna Taylor
//	▌ [instagram] [tiktok]
//	▌ Short video teasing the new product line
func RenderFeed(items []models.ContentItem, selected, width, height int) string {
	if len(items) == 0 {
		return SubtleStyle.Italic(true).Render("No content matches the current filters")
	}

	wrapWidth := max(width-4, 20)
	perPost := feedPostHeight + 3
	start, end := listWindow(len(items), selected, max(height/perPost, 1))

	posts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		posts = append(posts, renderPost(items[i], i == selected, wrapWidth))
	}
	return strings.Join(posts, "\n\n")
}

func renderPost(item models.ContentItem, selected bool, width int) string {
	when := "unscheduled"
	if item.ScheduledDate != "" {
		when = strings.TrimSpace(item.ScheduledDate + " " + item.ScheduledTime)
	}
	meta := when
	if item.Assignee.Name != "" {
		meta += " · " + item.Assignee.Name
	}

	lines := []string{
		TitleStyle.Render(item.Title) + "  " + RenderStatusBadge(item.Status),
		SubtleStyle.Render(meta),
		RenderPlatformChips(item.Platforms, ""),
	}
	if desc := strings.TrimSpace(item.Description); desc != "" {
		lines = append(lines, wordwrap.String(desc, width))
	}

	accent := theme.CardBorder
	if p, ok := item.PrimaryPlatform(); ok {
		accent = p.Color()
	}
	if selected {
		accent = theme.SelectedBorder
	}

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(accent)).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}
