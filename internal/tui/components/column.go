package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// columnOverhead is the border, header and indicator lines of a column
const columnOverhead = 5

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (if more cards below)
//
// Parameters:
//   - column: The column to render
//   - selected: Whether this column is currently selected
//   - selectedIdx: Index of the selected card in this column
//   - height: Fixed height for the column (0 for auto)
//   - scrollOffset: Index of first visible card
func RenderColumn(column models.Column, selected bool, selectedIdx int, height int, scrollOffset int) string {
	header := fmt.Sprintf("%s (%d)", column.Title, len(column.Items))
	content := TitleStyle.Render(header) + "\n"

	if len(column.Items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No content")
	} else {
		maxVisible := VisibleCards(height)
		scrollOffset = max(min(scrollOffset, len(column.Items)-1), 0)

		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(scrollOffset+maxVisible, len(column.Items))
		for i, item := range column.Items[scrollOffset:endIdx] {
			content += RenderCard(item, selected && scrollOffset+i == selectedIdx) + "\n"
		}

		// Pad so the bottom indicator sits flush with the bottom border.
		// The column style adds three lines of border and padding.
		usedLines := 2 + (endIdx-scrollOffset)*CardHeight
		hasBottomIndicator := endIdx < len(column.Items)
		indicatorLines := 0
		if hasBottomIndicator {
			indicatorLines = 2
		}
		if remaining := height - 3 - usedLines - indicatorLines; remaining > 0 {
			content += strings.Repeat("\n", remaining)
		}
		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Height sets the content area, so leave room for the borders
		style = style.Height(height - 2)
	}
	return style.Render(content)
}

// RenderBoard lays out the visible window of columns side by side
func RenderBoard(b models.Board, selectedCol, selectedIdx, offset, size, height int, scrollOffset func(columnID string) int) string {
	if len(b.Columns) == 0 {
		return SubtleStyle.Render("No columns. Press c to add a section.")
	}

	end := min(offset+size, len(b.Columns))
	rendered := make([]string, 0, end-offset+2)
	if offset > 0 {
		rendered = append(rendered, IndicatorStyle.Render("◀"))
	}
	for i := offset; i < end; i++ {
		col := b.Columns[i]
		rendered = append(rendered, RenderColumn(col, i == selectedCol, selectedIdx, height, scrollOffset(col.ID)), " ")
	}
	if end < len(b.Columns) {
		rendered = append(rendered, IndicatorStyle.Render("▶"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
