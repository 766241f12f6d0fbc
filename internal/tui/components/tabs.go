package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs draws the view switcher across the top of the screen. The tab at
// selectedIdx is raised, and the rest of the row up to width is an underline
// that ends in the latest notification, if any.
//
//	╭───────╮╭──────────╮
//	│ Board ││ Calendar │──────────────── ℹ Content created
func RenderTabs(tabs []string, selectedIdx int, width int, notificationContent string) string {
	rendered := make([]string, len(tabs))
	for i, name := range tabs {
		style := TabStyle
		if i == selectedIdx {
			style = ActiveTabStyle
		}
		rendered[i] = style.Render(name)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	fill := width - lipgloss.Width(row) - lipgloss.Width(notificationContent) - 2
	parts := []string{row, TabGapStyle.Render(strings.Repeat(" ", max(fill, 0)))}
	if notificationContent != "" {
		parts = append(parts, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
