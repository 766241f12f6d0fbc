package calendar

import (
	"sort"
	"time"

	"github.com/thenoetrevino/plano/internal/models"
)

const (
	// UnscheduledKey keys the bucket of items without a usable date
	UnscheduledKey = "unscheduled"

	// NoTimeKey keys the slot of items without a scheduled time
	NoTimeKey = "No time"
)

// DayBucket groups the items scheduled on one calendar day
type DayBucket struct {
	Key   string               `json:"key"`
	Date  time.Time            `json:"-"`
	Items []models.ContentItem `json:"items"`
}

// Unscheduled reports whether this is the bucket of undated items
func (b DayBucket) Unscheduled() bool {
	return b.Key == UnscheduledKey
}

// TimeSlot groups the items of a day sharing a scheduled time
type TimeSlot struct {
	Time  string               `json:"time"`
	Items []models.ContentItem `json:"items"`
}

// BucketByDay groups items by scheduled date in ascending order. Items with
// an empty or unparseable date land in a trailing "unscheduled" bucket.
// Input order is kept within each bucket.
func BucketByDay(items []models.ContentItem) []DayBucket {
	byKey := make(map[string]*DayBucket)
	var keys []string
	var unscheduled []models.ContentItem

	for _, item := range items {
		date, ok := ParseDate(item.ScheduledDate)
		if !ok {
			unscheduled = append(unscheduled, item)
			continue
		}
		key := DayKey(date)
		bucket, exists := byKey[key]
		if !exists {
			bucket = &DayBucket{Key: key, Date: date}
			byKey[key] = bucket
			keys = append(keys, key)
		}
		bucket.Items = append(bucket.Items, item)
	}

	sort.Strings(keys)
	buckets := make([]DayBucket, 0, len(keys)+1)
	for _, key := range keys {
		buckets = append(buckets, *byKey[key])
	}
	if len(unscheduled) > 0 {
		buckets = append(buckets, DayBucket{Key: UnscheduledKey, Items: unscheduled})
	}
	return buckets
}

// TimeSlots groups items by scheduled time. Times sort lexicographically and
// the "No time" slot comes last.
func TimeSlots(items []models.ContentItem) []TimeSlot {
	byTime := make(map[string][]models.ContentItem)
	var times []string
	var untimed []models.ContentItem

	for _, item := range items {
		if item.ScheduledTime == "" {
			untimed = append(untimed, item)
			continue
		}
		if _, ok := byTime[item.ScheduledTime]; !ok {
			times = append(times, item.ScheduledTime)
		}
		byTime[item.ScheduledTime] = append(byTime[item.ScheduledTime], item)
	}

	sort.Strings(times)
	slots := make([]TimeSlot, 0, len(times)+1)
	for _, t := range times {
		slots = append(slots, TimeSlot{Time: t, Items: byTime[t]})
	}
	if len(untimed) > 0 {
		slots = append(slots, TimeSlot{Time: NoTimeKey, Items: untimed})
	}
	return slots
}

// BucketByMonth keeps the items scheduled in the same month and year as ref
func BucketByMonth(items []models.ContentItem, ref time.Time) []models.ContentItem {
	return keep(items, func(date time.Time) bool { return SameMonth(date, ref) })
}

// ItemsOnDay keeps the items scheduled on the calendar day of day
func ItemsOnDay(items []models.ContentItem, day time.Time) []models.ContentItem {
	return keep(items, func(date time.Time) bool { return SameDay(date, day) })
}

func keep(items []models.ContentItem, match func(time.Time) bool) []models.ContentItem {
	var out []models.ContentItem
	for _, item := range items {
		date, ok := ParseDate(item.ScheduledDate)
		if ok && match(date) {
			out = append(out, item)
		}
	}
	return out
}
