package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func dated(id, date, tm string, platforms ...models.Platform) models.ContentItem {
	return models.ContentItem{
		ID:            id,
		Title:         "Item " + id,
		ScheduledDate: date,
		ScheduledTime: tm,
		Platforms:     platforms,
		Status:        models.StatusIdea,
	}
}

func itemIDs(items []models.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ============================================================================
// DATES
// ============================================================================

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, ok := ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, day(2024, time.February, 29), got)

	for _, raw := range []string{"", "tomorrow", "2024-02-30", "01/05/2024"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"10:00", 600, true},
		{"7:00 AM", 420, true},
		{"7:30 pm", 1170, true},
		{"12:15 AM", 15, true},
		{"", 0, false},
		{"noonish", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseTime(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestTimeBefore(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeBefore("7:00 AM", "10:00"))
	assert.False(t, TimeBefore("10:00", "7:00 AM"))
	assert.True(t, TimeBefore("23:59", ""))
	assert.False(t, TimeBefore("", "00:00"))
	assert.False(t, TimeBefore("", "later"))
}

func TestMonthDaysAndNavigation(t *testing.T) {
	t.Parallel()

	feb := MonthDays(day(2024, time.February, 17))
	require.Len(t, feb, 29)
	assert.Equal(t, day(2024, time.February, 1), feb[0])
	assert.Equal(t, day(2024, time.February, 29), feb[28])

	assert.Equal(t, day(2023, time.December, 1), PrevMonth(day(2024, time.January, 31)))
	assert.Equal(t, day(2024, time.February, 1), NextMonth(day(2024, time.January, 31)))
	assert.Equal(t, 31, DaysIn(day(2024, time.December, 5)))
}

// ============================================================================
// BUCKETS
// ============================================================================

func TestBucketByDay(t *testing.T) {
	t.Parallel()

	buckets := BucketByDay([]models.ContentItem{
		dated("a", "2024-01-05", ""),
		dated("b", "2024-01-05", ""),
		dated("c", "", ""),
	})

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-01-05", buckets[0].Key)
	assert.Len(t, buckets[0].Items, 2)
	assert.Equal(t, UnscheduledKey, buckets[1].Key)
	assert.True(t, buckets[1].Unscheduled())
	assert.Len(t, buckets[1].Items, 1)
}

func TestBucketByDay_SortsAndTreatsBadDatesAsUnscheduled(t *testing.T) {
	t.Parallel()

	buckets := BucketByDay([]models.ContentItem{
		dated("late", "2024-03-01", ""),
		dated("bad", "not-a-date", ""),
		dated("early", "2023-12-31", ""),
		dated("none", "", ""),
	})

	keys := make([]string, 0, len(buckets))
	for _, b := range buckets {
		keys = append(keys, b.Key)
	}
	assert.Equal(t, []string{"2023-12-31", "2024-03-01", UnscheduledKey}, keys)
	assert.Equal(t, []string{"bad", "none"}, itemIDs(buckets[2].Items))
}

func TestBucketByDay_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BucketByDay(nil))
}

func TestTimeSlots(t *testing.T) {
	t.Parallel()

	slots := TimeSlots([]models.ContentItem{
		dated("a", "2024-01-05", "14:30"),
		dated("b", "2024-01-05", ""),
		dated("c", "2024-01-05", "09:00"),
		dated("d", "2024-01-05", "14:30"),
	})

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "14:30", slots[1].Time)
	assert.Equal(t, []string{"a", "d"}, itemIDs(slots[1].Items))
	assert.Equal(t, NoTimeKey, slots[2].Time)
}

func TestBucketByMonthAndDay(t *testing.T) {
	t.Parallel()

	items := []models.ContentItem{
		dated("jan5", "2024-01-05", ""),
		dated("jan31", "2024-01-31", ""),
		dated("feb1", "2024-02-01", ""),
		dated("jan-last-year", "2023-01-05", ""),
		dated("none", "", ""),
	}

	assert.Equal(t, []string{"jan5", "jan31"}, itemIDs(BucketByMonth(items, day(2024, time.January, 20))))
	assert.Equal(t, []string{"jan5"}, itemIDs(ItemsOnDay(items, day(2024, time.January, 5))))
	assert.Empty(t, ItemsOnDay(items, day(2024, time.January, 6)))
}

// ============================================================================
// FILTER
// ============================================================================

func TestFilter(t *testing.T) {
	t.Parallel()

	both := dated("both", "2024-01-05", "", models.PlatformInstagram, models.PlatformTikTok)
	fb := dated("fb", "2024-01-05", "", models.PlatformFacebook)
	fb.Status = models.StatusApproved
	fb.Assignee.Name = "Anna Taylor"
	fb.ContentType = "post"
	items := []models.ContentItem{both, fb}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no criteria", Criteria{}, []string{"both", "fb"}},
		{"platform or-match", Criteria{Platforms: []string{"tiktok"}}, []string{"both"}},
		{"all sentinel wins", Criteria{Platforms: []string{"tiktok", All}}, []string{"both", "fb"}},
		{"status", Criteria{Statuses: []string{"approved"}}, []string{"fb"}},
		{"assignee case-insensitive", Criteria{Assignees: []string{"anna taylor"}}, []string{"fb"}},
		{"content type", Criteria{ContentTypes: []string{"post"}}, []string{"fb"}},
		{"and across dimensions", Criteria{Platforms: []string{"facebook"}, Statuses: []string{"idea"}}, nil},
		{"or within dimension", Criteria{Platforms: []string{"facebook", "instagram"}}, []string{"both", "fb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.criteria)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, itemIDs(got))
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	values := Toggle(nil, "tiktok")
	assert.Equal(t, []string{"tiktok"}, values)
	values = Toggle(values, "instagram")
	assert.Equal(t, []string{"tiktok", "instagram"}, values)
	assert.Equal(t, []string{"instagram"}, Toggle(values, "tiktok"))
	assert.Equal(t, []string{"tiktok", "instagram"}, values)
}

func TestDistinctOptions(t *testing.T) {
	t.Parallel()

	a := dated("a", "", "")
	a.Assignee.Name = "John"
	a.ContentType = "video"
	b := dated("b", "", "")
	b.Assignee.Name = "Anna"
	c := dated("c", "", "")
	c.Assignee.Name = "John"
	c.ContentType = "post"

	items := []models.ContentItem{a, b, c}
	assert.Equal(t, []string{"John", "Anna"}, Assignees(items))
	assert.Equal(t, []string{"video", "post"}, ContentTypes(items))
}

// ============================================================================
// SEARCH
// ============================================================================

func TestSearch(t *testing.T) {
	t.Parallel()

	launch := dated("launch", "", "")
	launch.Title = "Product Launch Teaser"
	news := dated("news", "", "")
	news.Title = "Weekly Newsletter"
	news.Description = "Regular product updates"
	items := []models.ContentItem{launch, news}

	assert.Equal(t, items, Search(items, "  "))
	assert.Equal(t, []string{"launch"}, itemIDs(Search(items, "teaser")))
	assert.ElementsMatch(t, []string{"launch", "news"}, itemIDs(Search(items, "product")))
	assert.Empty(t, Search(items, "zzzz"))
}

// ============================================================================
// STATS
// ============================================================================

func TestDailyCounts(t *testing.T) {
	t.Parallel()

	counts := DailyCounts([]models.ContentItem{
		dated("a", "2024-02-01", ""),
		dated("b", "2024-02-29", ""),
		dated("c", "2024-02-29", ""),
		dated("d", "2024-03-01", ""),
		dated("e", "bogus", ""),
	}, day(2024, time.February, 10))

	require.Len(t, counts, 29)
	assert.Equal(t, DayCount{Day: 1, Count: 1}, counts[0])
	assert.Equal(t, DayCount{Day: 2, Count: 0}, counts[1])
	assert.Equal(t, DayCount{Day: 29, Count: 2}, counts[28])
}

func TestByPlatform(t *testing.T) {
	t.Parallel()

	got := ByPlatform([]models.ContentItem{
		dated("a", "", "", models.PlatformTikTok, models.PlatformInstagram),
		dated("b", "", "", models.PlatformInstagram),
	})

	assert.Equal(t, []Tally[models.Platform]{
		{Key: models.PlatformTikTok, Count: 1},
		{Key: models.PlatformInstagram, Count: 2},
	}, got)
}

func TestByStatus(t *testing.T) {
	t.Parallel()

	approved := dated("a", "", "")
	approved.Status = models.StatusApproved
	odd := dated("b", "", "")
	odd.Status = "archived"

	got := ByStatus([]models.ContentItem{approved, dated("c", "", ""), odd})

	assert.Equal(t, []Tally[models.Status]{
		{Key: models.StatusIdea, Count: 1},
		{Key: models.StatusInProgress, Count: 0},
		{Key: models.StatusReviewReady, Count: 0},
		{Key: models.StatusApproved, Count: 1},
		{Key: "archived", Count: 1},
	}, got)
}

func TestAggregateBy_CustomKey(t *testing.T) {
	t.Parallel()

	got := AggregateBy([]models.ContentItem{
		dated("a", "2024-01-05", ""),
		dated("b", "2024-01-06", ""),
		dated("c", "2024-01-05", ""),
	}, func(item models.ContentItem) []string { return []string{item.ScheduledDate} })

	assert.Equal(t, []Tally[string]{{Key: "2024-01-05", Count: 2}, {Key: "2024-01-06", Count: 1}}, got)
}

func TestMonthSummary(t *testing.T) {
	t.Parallel()

	s := MonthSummary([]models.ContentItem{
		dated("a", "2024-01-15", "09:00", models.PlatformInstagram, models.PlatformTikTok),
		dated("b", "2024-01-18", "14:30", models.PlatformInstagram),
		dated("c", "2024-02-01", ""),
	}, day(2024, time.January, 3))

	assert.Equal(t, "January 2024", s.Label)
	assert.Equal(t, 2, s.Total)
	assert.Len(t, s.Daily, 31)
	assert.Equal(t, 1, s.Daily[14].Count)
	assert.Equal(t, 2, s.Platforms[0].Count)
	assert.Equal(t, 2, s.Statuses[0].Count)
}
