package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// sparkLevels are the bar heights of the daily histogram, lowest first
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// analyticsBarWidth is the length of the longest tally bar
const analyticsBarWidth = 30

// RenderAnalytics renders the statistics card of a month
//
//	January 2024 (12 items)
//	Daily  ▁▁▁▁█▁▁▁▁▄▁...
//	By platform
//	  instagram ██████████ 7
//	By status
//	  Idea      ██████ 5
func RenderAnalytics(summary calendar.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", TitleStyle.Render(summary.Label), SubtleStyle.Render(fmt.Sprintf("(%d items)", summary.Total)))

	b.WriteString(HeaderStyle.Render("Daily") + "\n")
	b.WriteString(renderSparkline(summary.Daily) + "\n")
	b.WriteString(SubtleStyle.Render(dayAxis(len(summary.Daily))) + "\n\n")

	b.WriteString(HeaderStyle.Render("By platform") + "\n")
	platforms := make([]bar, len(summary.Platforms))
	for i, t := range summary.Platforms {
		platforms[i] = bar{label: string(t.Key), count: t.Count, color: t.Key.Color()}
	}
	b.WriteString(renderBars(platforms) + "\n\n")

	b.WriteString(HeaderStyle.Render("By status") + "\n")
	statuses := make([]bar, len(summary.Statuses))
	for i, t := range summary.Statuses {
		statuses[i] = bar{label: t.Key.Title(), count: t.Count, color: theme.StatusColor(t.Key)}
	}
	b.WriteString(renderBars(statuses))
	return b.String()
}

type bar struct {
	label string
	count int
	color string
}

func renderBars(bars []bar) string {
	if len(bars) == 0 {
		return SubtleStyle.Italic(true).Render("  none")
	}
	top, labelWidth := 0, 0
	for _, b := range bars {
		top = max(top, b.count)
		labelWidth = max(labelWidth, len(b.label))
	}

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := 0
		if top > 0 {
			n = b.count * analyticsBarWidth / top
		}
		fill := lipgloss.NewStyle().Foreground(lipgloss.Color(b.color)).Render(strings.Repeat("█", n))
		lines[i] = fmt.Sprintf("  %-*s %s %d", labelWidth, b.label, fill, b.count)
	}
	return strings.Join(lines, "\n")
}

// renderSparkline draws one glyph per day scaled to the busiest day
func renderSparkline(daily []calendar.DayCount) string {
	top := 0
	for _, d := range daily {
		top = max(top, d.Count)
	}

	var b strings.Builder
	for _, d := range daily {
		if d.Count == 0 || top == 0 {
			b.WriteString(SubtleStyle.Render(string(sparkLevels[0])))
			continue
		}
		level := d.Count * (len(sparkLevels) - 1) / top
		b.WriteString(HeaderStyle.Render(string(sparkLevels[level])))
	}
	return b.String()
}

// dayAxis marks every fifth day under the sparkline
func dayAxis(days int) string {
	axis := []rune(strings.Repeat(" ", days))
	for d := 1; d <= days; d += 5 {
		label := []rune(fmt.Sprint(d))
		copy(axis[d-1:], label)
	}
	return string(axis)
}
