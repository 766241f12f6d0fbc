package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/plano/internal/models"
)

// FormState holds the create-content form and the values it edits in place.
type FormState struct {
	CreateForm *huh.Form

	Title       string
	Description string
	Date        string
	Time        string
	Platforms   []string
	ContentType string
	Confirm     bool
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset clears the form values, scheduling new content on date.
func (s *FormState) Reset(date string) {
	s.CreateForm = nil
	s.Title = ""
	s.Description = ""
	s.Date = date
	s.Time = ""
	s.Platforms = nil
	s.ContentType = "post"
	s.Confirm = true
}

// Data converts the form values into a create-content request.
func (s *FormState) Data() models.CreateContentData {
	platforms := make([]models.Platform, 0, len(s.Platforms))
	for _, p := range s.Platforms {
		platforms = append(platforms, models.Platform(p))
	}
	return models.CreateContentData{
		Title:         strings.TrimSpace(s.Title),
		Description:   strings.TrimSpace(s.Description),
		ScheduledDate: strings.TrimSpace(s.Date),
		ScheduledTime: strings.TrimSpace(s.Time),
		Platforms:     platforms,
		ContentType:   s.ContentType,
	}
}

// maxInputLength matches the longest title the board service accepts
const maxInputLength = 255

// InputState manages the single-line rename prompt.
type InputState struct {
	Input textinput.Model

	// Prompt is the text displayed above the input (e.g., "Rename card")
	Prompt string

	// TargetID is the card or column being renamed
	TargetID string
}

// NewInputState creates an InputState with an unfocused text input.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = maxInputLength
	return &InputState{Input: ti}
}

// Start focuses the input on targetID, pre-filled with value.
func (s *InputState) Start(prompt, targetID, value string) {
	s.Prompt = prompt
	s.TargetID = targetID
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	s.Input.Focus()
}

// Value returns the trimmed input text.
func (s *InputState) Value() string {
	return strings.TrimSpace(s.Input.Value())
}

// Clear resets the prompt and blurs the input.
func (s *InputState) Clear() {
	s.Prompt = ""
	s.TargetID = ""
	s.Input.SetValue("")
	s.Input.Blur()
}
