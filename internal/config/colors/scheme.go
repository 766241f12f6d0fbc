package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // create-content form
	Edit   string `yaml:"edit"`   // rename prompts
	Delete string `yaml:"delete"` // remove-column confirmation

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	Today          string `yaml:"today"`

	// Status badge colors
	StatusIdea        string `yaml:"status_idea"`
	StatusInProgress  string `yaml:"status_in_progress"`
	StatusReviewReady string `yaml:"status_review_ready"`
	StatusApproved    string `yaml:"status_approved"`

	// Deadline urgency colors
	Critical string `yaml:"critical"`
	Soon     string `yaml:"soon"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so merge and default logic stay in one place
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground, &c.SelectedBorder, &c.SelectedBg, &c.Today,
		&c.StatusIdea, &c.StatusInProgress, &c.StatusReviewReady, &c.StatusApproved,
		&c.Critical, &c.Soon,
		&c.Title, &c.Subtle, &c.Normal,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	base := preset.fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *base[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, field := range c.fields() {
		if *src[i] != "" {
			*field = *src[i]
		}
	}
}
