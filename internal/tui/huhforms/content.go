package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
)

// ContentTypes are the suggested content type tags offered by the form
var ContentTypes = []string{"post", "video", "story", "reel", "carousel", "article"}

// descriptionLines is the height of the description text area
const descriptionLines = 4

// ContentFields are the values the create-content form edits in place
type ContentFields struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Platforms   *[]string
	ContentType *string
	Confirm     *bool
}

// CreateContentForm creates the create-content form. Title and date are
// validated inline; the board service still has the final say.
func CreateContentForm(f ContentFields) *huh.Form {
	platformOptions := make([]huh.Option[string], len(models.Platforms))
	for i, p := range models.Platforms {
		platformOptions[i] = huh.NewOption(string(p), string(p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter content title...").
			CharLimit(255).
			Validate(validateTitle).
			Value(f.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(f.Description),

		huh.NewInput().
			Key("date").
			Title("Scheduled date").
			Placeholder("YYYY-MM-DD, empty for unscheduled").
			Validate(validateDate).
			Value(f.Date),

		huh.NewInput().
			Key("time").
			Title("Scheduled time").
			Placeholder("e.g. 09:00").
			Value(f.Time),

		huh.NewMultiSelect[string]().
			Key("platforms").
			Title("Platforms").
			Description("The first selected platform is the primary one").
			Options(platformOptions...).
			Validate(validatePlatforms).
			Value(f.Platforms),

		huh.NewSelect[string]().
			Key("type").
			Title("Content type").
			Options(huh.NewOptions(ContentTypes...)...).
			Value(f.ContentType),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this content?").
			Affirmative("Yes").
			Negative("No").
			Value(f.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, ok := calendar.ParseDate(s); !ok {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

func validatePlatforms(p []string) error {
	if len(p) == 0 {
		return errors.New("pick at least one platform")
	}
	return nil
}
