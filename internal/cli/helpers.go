package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
)

// MonthLayout is the --month flag format
const MonthLayout = "2006-01"

// splitList flattens repeated and comma separated flag values
func splitList(raw []string) []string {
	var out []string
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}

// ParsePlatforms maps platform names to platforms, keeping their order
func ParsePlatforms(raw []string) ([]models.Platform, error) {
	var platforms []models.Platform
	for _, name := range splitList(raw) {
		p, ok := models.ParsePlatform(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown platform '%s' (must be: %s)", ErrInvalidInput, name, platformNames())
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// ParseStatuses validates status names for filtering
func ParseStatuses(raw []string) ([]string, error) {
	statuses := splitList(raw)
	for _, name := range statuses {
		if name == calendar.All {
			continue
		}
		if _, ok := models.ParseStatus(name); !ok {
			return nil, fmt.Errorf("%w: unknown status '%s' (must be: idea, in-progress, review-ready, approved)", ErrInvalidInput, name)
		}
	}
	return statuses, nil
}

// ParseList normalises a free-form filter list such as assignees
func ParseList(raw []string) []string {
	return splitList(raw)
}

// ValidateDate accepts an empty date or YYYY-MM-DD
func ValidateDate(raw string) error {
	if raw == "" {
		return nil
	}
	if _, ok := calendar.ParseDate(raw); !ok {
		return fmt.Errorf("date '%s': %w", raw, models.ErrInvalidDate)
	}
	return nil
}

// ParseDay parses a YYYY-MM-DD day, defaulting to today
func ParseDay(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "today") {
		return calendar.Day(now), nil
	}
	day, ok := calendar.ParseDate(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("date '%s': %w", raw, models.ErrInvalidDate)
	}
	return day, nil
}

// ParseMonth parses a YYYY-MM month, defaulting to the current month
func ParseMonth(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return calendar.MonthStart(now), nil
	}
	month, err := time.Parse(MonthLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month '%s' must be YYYY-MM", ErrInvalidInput, raw)
	}
	return month, nil
}

// OutcomeError returns the reason an operation was ignored, if any
func OutcomeError(out boardservice.Outcome) error {
	if out.Applied || out.Cancelled {
		return nil
	}
	return out.Reason
}

// CheckOutcome reports a failed or ignored board operation through f
func CheckOutcome(f *OutputFormatter, out boardservice.Outcome, err error, suggestion string) error {
	if err == nil {
		err = OutcomeError(out)
	}
	if err != nil {
		return f.Fail(err, suggestion)
	}
	return nil
}

func platformNames() string {
	names := make([]string, len(models.Platforms))
	for i, p := range models.Platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
