package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// listWindow returns the [start, end) range of rows to show so that
// selected stays visible within height rows
func listWindow(total, selected, height int) (int, int) {
	height = max(height, 1)
	if total <= height {
		return 0, total
	}
	start := max(min(selected-height/2, total-height), 0)
	return start, start + height
}

// cell truncates s to width and pads it to exactly width
func cell(s string, width int) string {
	return padding.String(truncate.StringWithTail(s, uint(width), "…"), uint(width))
}

// renderRow joins cells and highlights the selected row
func renderRow(cells []string, selected bool, width int) string {
	row := strings.Join(cells, " ")
	if selected {
		return SelectedRowStyle.Width(width).Render(row)
	}
	return lipgloss.NewStyle().Width(width).Render(row)
}
