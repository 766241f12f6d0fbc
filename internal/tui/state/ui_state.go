package state

import (
	"strings"
	"time"

	"github.com/thenoetrevino/plano/internal/calendar"
)

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	CreateFormMode                      // Create-content form with huh
	RenameCardMode                      // Renaming the selected card
	RenameColumnMode                    // Renaming the selected column
	RemoveColumnConfirmMode             // Confirming column removal
	DetailMode                          // Card detail overlay
	HelpMode                            // Displaying help screen
	SearchMode                          // Typing a search query (/)
	FilterMode                          // Filter picker popup
)

// View is one of the top-level screens reachable with the view key
type View int

const (
	BoardView View = iota
	CalendarView
	TableView
	FeedView
	AnalyticsView
	DeadlinesView
)

// Views lists the screens in tab order
var Views = []View{BoardView, CalendarView, TableView, FeedView, AnalyticsView, DeadlinesView}

var viewNames = map[View]string{
	BoardView:     "Board",
	CalendarView:  "Calendar",
	TableView:     "Table",
	FeedView:      "Feed",
	AnalyticsView: "Analytics",
	DeadlinesView: "Deadlines",
}

// String returns the tab label of the view
func (v View) String() string {
	return viewNames[v]
}

// ParseView maps a configured view name to a View, defaulting to the board
func ParseView(name string) View {
	for _, v := range Views {
		if strings.EqualFold(v.String(), strings.TrimSpace(name)) {
			return v
		}
	}
	return BoardView
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, the current view and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedCard   int

	// selectedRow is the cursor of the list views (table, feed, deadlines)
	selectedRow int

	width  int
	height int

	mode Mode
	view View

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each column
	// Key: column id, Value: index of first visible card
	cardScrollOffsets map[string]int

	// selectedDay drives the calendar and analytics views
	selectedDay time.Time

	// detailItem is the item shown in DetailMode
	detailItem string
}

// NewUIState creates a new UIState with the calendar cursor on today.
func NewUIState(today time.Time) *UIState {
	return &UIState{
		mode:              NormalMode,
		view:              BoardView,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[string]int),
		selectedDay:       calendar.Day(today),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the selected card within the selected column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// SelectedRow returns the list-view cursor.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the list-view cursor.
func (s *UIState) SetSelectedRow(row int) {
	s.selectedRow = max(row, 0)
}

// ClampRow keeps the list-view cursor inside a list of n rows.
func (s *UIState) ClampRow(n int) {
	s.selectedRow = max(min(s.selectedRow, n-1), 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the main content area.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// View returns the current screen.
func (s *UIState) View() View {
	return s.view
}

// SetView switches screens and resets the list cursor.
func (s *UIState) SetView(v View) {
	s.view = v
	s.selectedRow = 0
}

// CycleView moves to the next (delta 1) or previous (delta -1) screen.
func (s *UIState) CycleView(delta int) {
	n := len(Views)
	s.SetView(Views[((int(s.view)+delta)%n+n)%n])
}

// SelectedDay returns the calendar cursor.
func (s *UIState) SelectedDay() time.Time {
	return s.selectedDay
}

// SetSelectedDay moves the calendar cursor to the start of day.
func (s *UIState) SetSelectedDay(day time.Time) {
	s.selectedDay = calendar.Day(day)
}

// ShiftDay moves the calendar cursor by n days.
func (s *UIState) ShiftDay(n int) {
	s.selectedDay = s.selectedDay.AddDate(0, 0, n)
}

// ShiftMonth moves the calendar cursor to the first day of the adjacent month.
func (s *UIState) ShiftMonth(delta int) {
	if delta < 0 {
		s.selectedDay = calendar.PrevMonth(s.selectedDay)
		return
	}
	s.selectedDay = calendar.NextMonth(s.selectedDay)
}

// DetailItem returns the id of the item shown in the detail overlay.
func (s *UIState) DetailItem() string {
	return s.detailItem
}

// SetDetailItem selects the item shown in the detail overlay.
func (s *UIState) SetDetailItem(id string) {
	s.detailItem = id
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width.
//
// Column layout:
//   - Content width: 32 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 38 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 38
	const reservedWidth = 4

	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// AdjustViewport keeps the viewport within bounds after columns are added or
// removed, and keeps the selection visible.
func (s *UIState) AdjustViewport(columnsLen int) {
	if columnsLen == 0 {
		s.viewportOffset = 0
		s.selectedColumn = 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, columnsLen-1)
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// EnsureSelectionVisible adjusts the viewport to ensure the selected column is visible.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// CardScrollOffset returns the vertical scroll offset for a column.
func (s *UIState) CardScrollOffset(columnID string) int {
	return s.cardScrollOffsets[columnID]
}

// EnsureCardVisible adjusts the scroll offset so the selected card is visible.
//
// Parameters:
//   - columnID: the column containing the card
//   - selectedIdx: index of the selected card within the column
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureCardVisible(columnID string, selectedIdx int, visibleCount int) {
	offset := s.cardScrollOffsets[columnID]
	if selectedIdx < offset {
		offset = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		offset = selectedIdx - visibleCount + 1
	}
	s.cardScrollOffsets[columnID] = max(0, offset)
}
