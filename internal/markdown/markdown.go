// Package markdown renders item descriptions for the terminal with glamour.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Style names accepted by Render
const (
	StyleAuto  = styles.AutoStyle
	StyleDark  = styles.DarkStyle
	StyleLight = styles.LightStyle
	StylePlain = styles.NoTTYStyle
)

// MinWidth is the narrowest wrap width Render will use
const MinWidth = 10

// Cache renderers by style and width to avoid expensive re-creation
var (
	mu        sync.Mutex
	renderers = map[string]*glamour.TermRenderer{}
)

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)

	mu.Lock()
	defer mu.Unlock()

	if r, ok := renderers[key]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// Render formats md wrapped to width. The raw text is returned when glamour
// fails, and an empty string for blank input.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < MinWidth {
		width = MinWidth
	}
	if style == "" {
		style = StyleAuto
	}

	r, err := renderer(style, width)
	if err != nil {
		return md
	}

	mu.Lock()
	out, err := r.Render(md)
	mu.Unlock()
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
