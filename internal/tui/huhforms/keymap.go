package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// newlineKeys break a line in the description field
var newlineKeys = []string{"shift+enter", "alt+enter", "ctrl+j"}

// CreateKeyMapWithShiftEnter returns huh's default key map where shift+enter
// also starts a new description line
func CreateKeyMapWithShiftEnter() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys(newlineKeys...),
		key.WithHelp("shift+enter", "new line"),
	)
	return km
}
