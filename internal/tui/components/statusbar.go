package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// StatusBarProps describes the status bar contents
type StatusBarProps struct {
	Width int

	// Context is shown on the left, e.g. the active filters
	Context string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "plano" plus the view context
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "plano - content planner"
	if props.Context != "" {
		leftText += "  " + props.Context
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
