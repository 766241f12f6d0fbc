package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/tui/theme"
)

// calendarCellWidth is the width of one day cell of the month grid
const calendarCellWidth = 10

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderCalendar renders the month containing selected as a Sunday-first
// grid followed by the selected day's schedule. The item with id selectedID
// is marked in the schedule.
//
//	January 2024
//	Sun       Mon       Tue  ...
//	          1         2
//	          ●●        ●
func RenderCalendar(items []models.ContentItem, selected, today time.Time, selectedID string) string {
	month := calendar.MonthStart(selected)
	byDay := make(map[string][]models.ContentItem)
	for _, bucket := range calendar.BucketByDay(calendar.BucketByMonth(items, month)) {
		byDay[bucket.Key] = bucket.Items
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(month.Format("January 2006")) + "\n\n")

	header := make([]string, len(weekdays))
	for i, d := range weekdays {
		header[i] = HeaderStyle.Width(calendarCellWidth).Render(d)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...) + "\n")

	lead := int(month.Weekday())
	cells := make([]string, 0, 42)
	for range lead {
		cells = append(cells, renderEmptyCell())
	}
	for _, day := range calendar.MonthDays(month) {
		cells = append(cells, renderDayCell(day, byDay[calendar.DayKey(day)], calendar.SameDay(day, selected), calendar.SameDay(day, today)))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, renderEmptyCell())
	}
	for week := 0; week < len(cells); week += 7 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells[week:week+7]...) + "\n")
	}

	b.WriteString("\n" + RenderDaySchedule(byDay[calendar.DayKey(selected)], selected, selectedID))
	return b.String()
}

func renderEmptyCell() string {
	return lipgloss.NewStyle().Width(calendarCellWidth).Height(2).Render("")
}

// renderDayCell shows the day number and one dot per item in its primary
// platform color
func renderDayCell(day time.Time, items []models.ContentItem, selected, isToday bool) string {
	number := lipgloss.NewStyle()
	switch {
	case selected:
		number = number.Bold(true).Background(lipgloss.Color(theme.SelectedBorder)).Foreground(lipgloss.Color("#FFFFFF"))
	case isToday:
		number = number.Bold(true).Foreground(lipgloss.Color(theme.Today))
	}
	top := number.Render(fmt.Sprintf("%2d", day.Day()))

	var dots strings.Builder
	for i, item := range items {
		if i == calendarCellWidth-3 {
			dots.WriteString(SubtleStyle.Render("+"))
			break
		}
		color := theme.Subtle
		if p, ok := item.PrimaryPlatform(); ok {
			color = p.Color()
		}
		dots.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●"))
	}

	return lipgloss.NewStyle().Width(calendarCellWidth).Height(2).Render(top + "\n" + dots.String())
}

// RenderDaySchedule lists a day's items grouped by scheduled time
func RenderDaySchedule(items []models.ContentItem, day time.Time, selectedID string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(day.Format("Monday, January 2")) + "\n")

	slots := calendar.TimeSlots(items)
	if len(slots) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("Nothing scheduled"))
		return b.String()
	}
	for _, slot := range slots {
		b.WriteString(HeaderStyle.Render(slot.Time) + "\n")
		for _, item := range slot.Items {
			cursor := "  "
			if item.ID == selectedID {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s %s  %s\n",
				cursor,
				RenderStatusBadge(item.Status),
				truncate.StringWithTail(item.Title, 40, "…"),
				RenderPlatformChips(item.Platforms, ""))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
