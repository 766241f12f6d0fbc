package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/plano/internal/models"
)

// tableColumn is one column of the content table
type tableColumn struct {
	title string
	width int
	value func(models.ContentItem) string
}

var tableColumns = []tableColumn{
	{"Title", 28, func(c models.ContentItem) string { return c.Title }},
	{"Status", 13, func(c models.ContentItem) string { return c.Status.Title() }},
	{"Date", 10, func(c models.ContentItem) string { return c.ScheduledDate }},
	{"Time", 8, func(c models.ContentItem) string { return c.ScheduledTime }},
	{"Platforms", 28, func(c models.ContentItem) string { return platformList(c.Platforms) }},
	{"Assignee", 14, func(c models.ContentItem) string { return c.Assignee.Name }},
	{"Type", 8, func(c models.ContentItem) string { return c.ContentType }},
}

// RenderTable renders items as a table with one row per item
//
//	Title          Status       Date        ...
//	Post a Banner  Idea         2024-01-05  ...
func RenderTable(items []models.ContentItem, selected, width, height int) string {
	var b strings.Builder

	headers := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		headers[i] = cell(col.title, col.width)
	}
	b.WriteString(HeaderStyle.Render(strings.Join(headers, " ")) + "\n")

	if len(items) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No content matches the current filters"))
		return b.String()
	}

	// header and footer
	start, end := listWindow(len(items), selected, height-2)
	for i := start; i < end; i++ {
		cells := make([]string, len(tableColumns))
		for j, col := range tableColumns {
			cells[j] = cell(col.value(items[i]), col.width)
		}
		b.WriteString(renderRow(cells, i == selected, width) + "\n")
	}
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d of %d", min(selected+1, len(items)), len(items))))
	return b.String()
}

func platformList(platforms []models.Platform) string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
