package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/plano/internal/tui/state"
)

// pickerMaxVisible bounds the rows shown by the filter picker
const pickerMaxVisible = 15

// RenderFilterPicker renders the filter options grouped by dimension
//
//	Platform
//	  [x] tiktok
//	> [ ] instagram
func RenderFilterPicker(opts []state.FilterOption, selected func(state.FilterOption) bool, cursor int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Filter content") + "\n")

	start, end := listWindow(len(opts), cursor, pickerMaxVisible)
	var lastDim state.Dimension
	for i := start; i < end; i++ {
		opt := opts[i]
		if opt.Dimension != lastDim {
			b.WriteString("\n" + HeaderStyle.Render(string(opt.Dimension)) + "\n")
			lastDim = opt.Dimension
		}
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		mark := "[ ]"
		if selected(opt) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, opt.Label)
		if i == cursor {
			line = SelectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + SubtleStyle.Render("space: toggle  x: clear  esc: close"))
	return b.String()
}
