package item

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/markdown"
	"github.com/thenoetrevino/plano/internal/models"
)

// printItemLine prints the one-line summary used by list output
func printItemLine(w io.Writer, v itemView) {
	when := v.ScheduledDate
	if when == "" {
		when = "unscheduled"
	} else if v.ScheduledTime != "" {
		when += " " + v.ScheduledTime
	}
	fmt.Fprintf(w, "  %s %s  %s  %s\n",
		styles.SubtitleStyle.Render(v.ID),
		v.Title,
		styles.SubtitleStyle.Render(when),
		styles.RenderPlatforms(v.Platforms))
}

// printItemCard prints the detail card used by show output
func printItemCard(w io.Writer, v itemView) {
	width := styles.CardWidth - 6
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(wordwrap.String(v.Title, width)))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("ID: " + v.ID))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("Column", v.Column)
	b.WriteString(styles.LabelStyle.Render("Status:") + " " + styles.RenderStatus(v.Status) + "\n")
	scheduled := v.ScheduledDate
	if scheduled == "" {
		scheduled = "unscheduled"
	}
	if v.ScheduledTime != "" {
		scheduled += " at " + v.ScheduledTime
	}
	field("Scheduled", scheduled)
	b.WriteString(styles.LabelStyle.Render("Platforms:") + " " + styles.RenderPlatforms(v.Platforms) + "\n")
	if v.ContentType != "" {
		field("Type", v.ContentType)
	}
	field("Assignee", v.Assignee.Name)
	field("Comments", fmt.Sprintf("%d", v.Comments))

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	if desc := markdown.Render(v.Description, width, styles.MarkdownStyle()); desc != "" {
		b.WriteString(desc)
	} else {
		b.WriteString(styles.SubtitleStyle.Render("No description"))
	}

	fmt.Fprintln(w, styles.RenderCard(b.String()))
}

func platformList(platforms []models.Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
