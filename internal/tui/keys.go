package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/plano/internal/config"
)

// keyMap holds the help bindings built from the configured key mappings.
// Dispatch still switches on the raw key strings.
type keyMap struct {
	AddCard       key.Binding
	CreateContent key.Binding
	RenameCard    key.Binding
	ViewCard      key.Binding
	MoveCardLeft  key.Binding
	MoveCardRight key.Binding
	MoveCardUp    key.Binding
	MoveCardDown  key.Binding

	AddSectionLeft  key.Binding
	AddSectionRight key.Binding
	RenameColumn    key.Binding
	RemoveColumn    key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevCard   key.Binding
	NextCard   key.Binding
	PrevMonth  key.Binding
	NextMonth  key.Binding
	GoToday    key.Binding

	RescheduleEarlier key.Binding
	RescheduleLater   key.Binding

	NextView key.Binding
	Search   key.Binding
	Filter   key.Binding
	ShowHelp key.Binding
	Quit     key.Binding
}

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddCard:       binding(km.AddCard, "add card"),
		CreateContent: binding(km.CreateContent, "create content"),
		RenameCard:    binding(km.RenameCard, "rename card"),
		ViewCard:      binding(km.ViewCard, "view card"),
		MoveCardLeft:  binding(km.MoveCardLeft, "move card left"),
		MoveCardRight: binding(km.MoveCardRight, "move card right"),
		MoveCardUp:    binding(km.MoveCardUp, "move card up"),
		MoveCardDown:  binding(km.MoveCardDown, "move card down"),

		AddSectionLeft:  binding(km.AddSectionLeft, "section left"),
		AddSectionRight: binding(km.AddSectionRight, "section right"),
		RenameColumn:    binding(km.RenameColumn, "rename column"),
		RemoveColumn:    binding(km.RemoveColumn, "remove column"),

		PrevColumn: binding(km.PrevColumn, "prev column / day"),
		NextColumn: binding(km.NextColumn, "next column / day"),
		PrevCard:   binding(km.PrevCard, "up / prev week"),
		NextCard:   binding(km.NextCard, "down / next week"),
		PrevMonth:  binding(km.PrevMonth, "prev month"),
		NextMonth:  binding(km.NextMonth, "next month"),
		GoToday:    binding(km.GoToday, "today"),

		RescheduleEarlier: binding(km.RescheduleEarlier, "item a day earlier"),
		RescheduleLater:   binding(km.RescheduleLater, "item a day later"),

		NextView: key.NewBinding(key.WithKeys(km.NextView, "shift+tab"), key.WithHelp(km.NextView+"/shift+tab", "switch view")),
		Search:   binding(km.Search, "search"),
		Filter:   binding(km.Filter, "filter"),
		ShowHelp: binding(km.ShowHelp, "help"),
		Quit:     binding(km.Quit, "quit"),
	}
}

// ShortHelp returns the bindings shown in the compact help line
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.CreateContent, k.Search, k.Filter, k.ShowHelp, k.Quit}
}

// FullHelp returns the help overlay, one group per column
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddCard, k.CreateContent, k.RenameCard, k.ViewCard, k.MoveCardLeft, k.MoveCardRight, k.MoveCardUp, k.MoveCardDown},
		{k.AddSectionLeft, k.AddSectionRight, k.RenameColumn, k.RemoveColumn},
		{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard, k.PrevMonth, k.NextMonth, k.GoToday, k.RescheduleEarlier, k.RescheduleLater},
		{k.NextView, k.Search, k.Filter, k.ShowHelp, k.Quit},
	}
}
