package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		Today:          "#FFFFFF",

		StatusIdea:        "#8A8A8A",
		StatusInProgress:  "#B2B2B2",
		StatusReviewReady: "#D0D0D0",
		StatusApproved:    "#FFFFFF",

		Critical: "#FFFFFF",
		Soon:     "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
