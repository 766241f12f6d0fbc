package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/plano/internal/markdown"
	"github.com/thenoetrevino/plano/internal/models"
)

// RenderDetail renders the full card of an item, with its description
// formatted as markdown
func RenderDetail(item models.ContentItem, columnTitle string, width int, mdStyle string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(item.Title) + "\n")
	b.WriteString(SubtleStyle.Render(item.ID) + "\n\n")

	field := func(label, value string) {
		if value == "" {
			value = SubtleStyle.Italic(true).Render("none")
		}
		fmt.Fprintf(&b, "%s %s\n", HeaderStyle.Render(fmt.Sprintf("%-10s", label)), value)
	}

	field("Status:", RenderStatusBadge(item.Status))
	field("Column:", columnTitle)
	field("Scheduled:", strings.TrimSpace(item.ScheduledDate+" "+item.ScheduledTime))
	field("Platforms:", RenderPlatformChips(item.Platforms, ""))
	field("Assignee:", item.Assignee.Name)
	field("Type:", item.ContentType)
	field("Comments:", fmt.Sprint(item.Comments))
	field("Thumbnail:", item.Thumbnail)

	if desc := markdown.Render(item.Description, width, mdStyle); desc != "" {
		b.WriteString("\n" + HeaderStyle.Render("Description") + "\n")
		b.WriteString(desc + "\n")
	}

	b.WriteString("\n" + SubtleStyle.Render("esc: close  e: rename"))
	return b.String()
}
