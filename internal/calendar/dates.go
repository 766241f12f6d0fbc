// Package calendar derives calendar views from a flat list of content items:
// day and month buckets, time slots, criteria filtering, search and the
// aggregate statistics shown next to the month grid.
package calendar

import (
	"strings"
	"time"

	"github.com/thenoetrevino/plano/internal/models"
)

// ParseDate parses an ISO scheduled date. Empty or malformed dates report
// false so callers can treat the item as unscheduled.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// timeLayouts are the scheduled time formats items use, 24h and 12h
var timeLayouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM"}

// ParseTime returns minutes after midnight for a scheduled time such as
// "10:00" or "7:00 AM". Empty or malformed times report false.
func ParseTime(raw string) (int, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return 0, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// TimeBefore orders scheduled times by clock time. Untimed or unparseable
// times sort after timed ones.
func TimeBefore(a, b string) bool {
	am, aok := ParseTime(a)
	bm, bok := ParseTime(b)
	switch {
	case aok && bok:
		return am < bm
	case aok != bok:
		return aok
	}
	return false
}

// Day truncates t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats t as an ISO calendar date
func DayKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

// MonthStart returns the first day of the month containing ref
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month containing ref
func DaysIn(ref time.Time) int {
	return MonthStart(ref).AddDate(0, 1, -1).Day()
}

// MonthDays returns every day of the month containing ref, in order
func MonthDays(ref time.Time) []time.Time {
	start := MonthStart(ref)
	n := DaysIn(ref)
	days := make([]time.Time, n)
	for i := range n {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// PrevMonth returns the first day of the month before ref
func PrevMonth(ref time.Time) time.Time {
	return MonthStart(ref).AddDate(0, -1, 0)
}

// NextMonth returns the first day of the month after ref
func NextMonth(ref time.Time) time.Time {
	return MonthStart(ref).AddDate(0, 1, 0)
}

// SameMonth reports whether a and b fall in the same calendar month and year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return SameMonth(a, b) && a.Day() == b.Day()
}
