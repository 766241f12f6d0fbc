package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		Today:          "#2563EB",

		// dashboard status palette
		StatusIdea:        "#9CA3AF",
		StatusInProgress:  "#3B82F6",
		StatusReviewReady: "#F59E0B",
		StatusApproved:    "#10B981",

		Critical: "#EF4444",
		Soon:     "#F59E0B",

		Title:  "#D75FD7",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		StatusBarBg:   "#874BFD",
		StatusBarText: "#D0D0D0",
	}
}
