package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	CreateContent string `yaml:"create_content"`
	RenameCard    string `yaml:"rename_card"`
	ViewCard      string `yaml:"view_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Columns
	AddSectionLeft  string `yaml:"add_section_left"`
	AddSectionRight string `yaml:"add_section_right"`
	RenameColumn    string `yaml:"rename_column"`
	RemoveColumn    string `yaml:"remove_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`
	PrevMonth  string `yaml:"prev_month"`
	NextMonth  string `yaml:"next_month"`
	GoToday    string `yaml:"go_today"`

	// Calendar
	RescheduleEarlier string `yaml:"reschedule_earlier"`
	RescheduleLater   string `yaml:"reschedule_later"`

	// Views
	NextView string `yaml:"next_view"`
	Search   string `yaml:"search"`
	Filter   string `yaml:"filter"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCard:       "a",
		CreateContent: "n",
		RenameCard:    "e",
		ViewCard:      "enter",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",

		AddSectionLeft:  "C",
		AddSectionRight: "c",
		RenameColumn:    "R",
		RemoveColumn:    "X",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",
		PrevMonth:  "[",
		NextMonth:  "]",
		GoToday:    "t",

		RescheduleEarlier: "<",
		RescheduleLater:   ">",

		NextView: "tab",
		Search:   "/",
		Filter:   "f",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// bindings pairs every binding with its slot so defaults can be applied uniformly
func (k *KeyMappings) bindings() []*string {
	return []*string{
		&k.AddCard, &k.CreateContent, &k.RenameCard, &k.ViewCard,
		&k.MoveCardLeft, &k.MoveCardRight, &k.MoveCardUp, &k.MoveCardDown,
		&k.AddSectionLeft, &k.AddSectionRight, &k.RenameColumn, &k.RemoveColumn,
		&k.PrevColumn, &k.NextColumn, &k.PrevCard, &k.NextCard,
		&k.PrevMonth, &k.NextMonth, &k.GoToday,
		&k.RescheduleEarlier, &k.RescheduleLater,
		&k.NextView, &k.Search, &k.Filter,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.bindings()
	for i, binding := range k.bindings() {
		if *binding == "" {
			*binding = *base[i]
		}
	}
}
