package components

import "github.com/thenoetrevino/plano/internal/tui/state"

// RenderNotification renders a compact banner for the tab bar
func RenderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return WarningBannerStyle.Render("⚠ " + n.Message)
	case state.LevelError:
		return ErrorBannerStyle.Render("✗ " + n.Message)
	default:
		return InfoBannerStyle.Render("ℹ " + n.Message)
	}
}
