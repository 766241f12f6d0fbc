package calendar

import (
	"time"

	"github.com/thenoetrevino/plano/internal/models"
)

// DayCount is the number of items scheduled on one day of a month
type DayCount struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// Tally is a name/count pair produced by AggregateBy
type Tally[K comparable] struct {
	Key   K   `json:"name"`
	Count int `json:"value"`
}

// DailyCounts counts the items scheduled on each day of the month containing
// month. Every day is present, zero-filled.
func DailyCounts(items []models.ContentItem, month time.Time) []DayCount {
	counts := make([]DayCount, DaysIn(month))
	for i := range counts {
		counts[i].Day = i + 1
	}
	for _, item := range BucketByMonth(items, month) {
		date, _ := ParseDate(item.ScheduledDate)
		counts[date.Day()-1].Count++
	}
	return counts
}

// AggregateBy tallies items under every key returned by keyFn, in first-seen
// key order
func AggregateBy[K comparable](items []models.ContentItem, keyFn func(models.ContentItem) []K) []Tally[K] {
	index := make(map[K]int)
	var tallies []Tally[K]
	for _, item := range items {
		for _, key := range keyFn(item) {
			i, ok := index[key]
			if !ok {
				i = len(tallies)
				index[key] = i
				tallies = append(tallies, Tally[K]{Key: key})
			}
			tallies[i].Count++
		}
	}
	return tallies
}

// ByPlatform counts items per platform. Multi-platform items count once for
// each of their platforms.
func ByPlatform(items []models.ContentItem) []Tally[models.Platform] {
	return AggregateBy(items, func(item models.ContentItem) []models.Platform {
		return item.Platforms
	})
}

// ByStatus counts items per status in workflow order. Every canonical status
// is listed; unknown statuses follow in first-seen order.
func ByStatus(items []models.ContentItem) []Tally[models.Status] {
	seen := AggregateBy(items, func(item models.ContentItem) []models.Status {
		return []models.Status{item.Status}
	})

	counts := make(map[models.Status]int, len(seen))
	for _, t := range seen {
		counts[t.Key] = t.Count
	}

	out := make([]Tally[models.Status], 0, len(models.Statuses)+len(seen))
	for _, s := range models.Statuses {
		out = append(out, Tally[models.Status]{Key: s, Count: counts[s]})
	}
	for _, t := range seen {
		if !t.Key.Valid() {
			out = append(out, t)
		}
	}
	return out
}

// Summary is the statistics card of a calendar month
type Summary struct {
	Month     time.Time                `json:"-"`
	Label     string                   `json:"month"`
	Total     int                      `json:"total"`
	Daily     []DayCount               `json:"daily"`
	Platforms []Tally[models.Platform] `json:"platforms"`
	Statuses  []Tally[models.Status]   `json:"statuses"`
}

// MonthSummary computes the statistics of the month containing month
func MonthSummary(items []models.ContentItem, month time.Time) Summary {
	inMonth := BucketByMonth(items, month)
	start := MonthStart(month)
	return Summary{
		Month:     start,
		Label:     start.Format("January 2006"),
		Total:     len(inMonth),
		Daily:     DailyCounts(inMonth, start),
		Platforms: ByPlatform(inMonth),
		Statuses:  ByStatus(inMonth),
	}
}
