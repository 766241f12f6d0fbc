// Package deadline selects the soonest upcoming content items.
package deadline

import (
	"fmt"
	"sort"
	"time"

	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
)

// DefaultCount is the number of deadlines returned when none is requested
const DefaultCount = 5

// Urgency is the badge variant of a deadline
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencySoon     Urgency = "soon"
	UrgencyNormal   Urgency = "normal"
)

// Deadline is an upcoming item with its distance from today in whole days
type Deadline struct {
	Item      models.ContentItem `json:"item"`
	Date      time.Time          `json:"-"`
	DaysUntil int                `json:"daysUntil"`
}

// Label returns the human label of the deadline
func (d Deadline) Label() string {
	return Label(d.DaysUntil)
}

// Urgency returns the badge variant of the deadline
func (d Deadline) Urgency() Urgency {
	return UrgencyOf(d.DaysUntil)
}

// Upcoming returns the n soonest items scheduled on or after the calendar day
// of now, ordered by date then clock time with untimed items last. Items
// without a usable date are skipped.
// n <= 0 selects DefaultCount.
func Upcoming(items []models.ContentItem, now time.Time, n int) []Deadline {
	if n <= 0 {
		n = DefaultCount
	}
	today := calendar.Day(now)

	var out []Deadline
	for _, item := range items {
		date, ok := calendar.ParseDate(item.ScheduledDate)
		if !ok || date.Before(today) {
			continue
		}
		out = append(out, Deadline{
			Item:      item,
			Date:      date,
			DaysUntil: DaysBetween(today, date),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return calendar.TimeBefore(out[i].Item.ScheduledTime, out[j].Item.ScheduledTime)
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// DaysBetween returns the calendar-day difference between two dates
func DaysBetween(from, to time.Time) int {
	return int(calendar.Day(to).Sub(calendar.Day(from)).Hours() / 24)
}

// Label renders a day distance as "Today", "Tomorrow" or "In N days"
func Label(daysUntil int) string {
	switch daysUntil {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", daysUntil)
	}
}

// UrgencyOf classifies a day distance into a badge variant
func UrgencyOf(daysUntil int) Urgency {
	switch {
	case daysUntil <= 1:
		return UrgencyCritical
	case daysUntil <= 3:
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}
