// Package layers positions modal content on the TUI canvas
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil for empty content so callers can skip the modal.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth picks a modal width between minWidth and maxWidth that fits the
// screen with some margin
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	return max(min(screenWidth-4, maxWidth), minWidth)
}
