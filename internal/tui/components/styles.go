// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of content cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, view headers)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text and empty states
	SubtleStyle lipgloss.Style

	// FormBoxStyle defines the create-content form modal
	FormBoxStyle lipgloss.Style

	// EditInputBoxStyle defines the rename prompt modal
	EditInputBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the remove-column confirmation
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the help screen and the card detail modal
	HelpBoxStyle lipgloss.Style

	// PickerBoxStyle defines the filter picker
	PickerBoxStyle lipgloss.Style

	// InfoBannerStyle, WarningBannerStyle and ErrorBannerStyle render notifications
	InfoBannerStyle    lipgloss.Style
	WarningBannerStyle lipgloss.Style
	ErrorBannerStyle   lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// HeaderStyle renders table headers
	HeaderStyle lipgloss.Style

	// SelectedRowStyle highlights the cursor row of the list views
	SelectedRowStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		BorderBackground(lipgloss.Color(theme.CardBg)).
		Background(lipgloss.Color(theme.CardBg)).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	PickerBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.Edit)).
		Bold(true).
		Padding(0, 1)

	WarningBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(theme.Soon)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(theme.Critical)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Foreground(lipgloss.Color(theme.StatusBarText))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	SelectedRowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)
}
