// Package tui is the interactive terminal board: a kanban view of the
// content columns plus calendar, table, feed, analytics and deadline views
// over the same items.
package tui

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/markdown"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/tui/components"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// dbTimeout bounds every board service call made from the TUI
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config
	logger *slog.Logger

	// board is the last snapshot loaded from the board service
	board models.Board

	uiState           *state.UIState
	notificationState *state.NotificationState
	formState         *state.FormState
	inputState        *state.InputState
	searchState       *state.InputState
	filterState       *state.FilterState

	keys keyMap
	help help.Model

	// mdStyle is the glamour style used for card descriptions
	mdStyle string
}

// New creates the TUI model and loads the board from the service
func New(ctx context.Context, a *app.App) Model {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	uiState := state.NewUIState(a.Now())
	uiState.SetView(state.ParseView(cfg.Board.DefaultView))

	m := Model{
		ctx:               ctx,
		app:               a,
		config:            cfg,
		logger:            a.Logger,
		uiState:           uiState,
		notificationState: state.NewNotificationState(),
		formState:         state.NewFormState(),
		inputState:        state.NewInputState(),
		searchState:       state.NewInputState(),
		filterState:       state.NewFilterState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		mdStyle:           markdown.StyleDark,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// dbContext returns a context for board service calls
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, dbTimeout)
}

// reload fetches the board and clamps every cursor to it
func (m *Model) reload() {
	ctx, cancel := m.dbContext()
	defer cancel()

	b, err := m.app.BoardService.Board(ctx)
	if err != nil {
		m.logger.Error("Error loading board", "error", err)
		m.notificationState.Add(state.LevelError, "Error loading board")
		return
	}
	m.setBoard(b)
}

// setBoard replaces the snapshot and keeps the selection in range
func (m *Model) setBoard(b models.Board) {
	m.board = b
	m.uiState.AdjustViewport(len(b.Columns))

	if col, ok := m.currentColumn(); ok {
		m.uiState.SetSelectedCard(max(min(m.uiState.SelectedCard(), len(col.Items)-1), 0))
	} else {
		m.uiState.SetSelectedCard(0)
	}
	m.uiState.ClampRow(m.rowCount())
}

// today is the application clock truncated to the day
func (m Model) today() time.Time {
	return calendar.Day(m.app.Now())
}

// currentColumn returns the selected column
func (m Model) currentColumn() (models.Column, bool) {
	idx := m.uiState.SelectedColumn()
	if idx < 0 || idx >= len(m.board.Columns) {
		return models.Column{}, false
	}
	return m.board.Columns[idx], true
}

// currentCard returns the selected card of the board view
func (m Model) currentCard() (models.ContentItem, bool) {
	col, ok := m.currentColumn()
	if !ok {
		return models.ContentItem{}, false
	}
	idx := m.uiState.SelectedCard()
	if idx < 0 || idx >= len(col.Items) {
		return models.ContentItem{}, false
	}
	return col.Items[idx], true
}

// listItems returns the filtered items of the list views ordered by schedule.
// Unscheduled items sort last.
func (m Model) listItems() []models.ContentItem {
	items := m.filterState.Apply(m.board.Items())
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (a.ScheduledDate == "") != (b.ScheduledDate == "") {
			return b.ScheduledDate == ""
		}
		if a.ScheduledDate != b.ScheduledDate {
			return a.ScheduledDate < b.ScheduledDate
		}
		return calendar.TimeBefore(a.ScheduledTime, b.ScheduledTime)
	})
	return items
}

// dayItems returns the filtered items of the calendar cursor day in the order
// the day schedule lists them
func (m Model) dayItems() []models.ContentItem {
	var items []models.ContentItem
	for _, slot := range calendar.TimeSlots(calendar.ItemsOnDay(m.listItems(), m.uiState.SelectedDay())) {
		items = append(items, slot.Items...)
	}
	return items
}

// rowCount is the number of rows of the current list view
func (m Model) rowCount() int {
	switch m.uiState.View() {
	case state.TableView, state.FeedView:
		return len(m.listItems())
	case state.DeadlinesView:
		return len(m.deadlines())
	case state.CalendarView:
		return len(m.dayItems())
	}
	return 0
}

// selectedItem returns the item under the cursor of the current view
func (m Model) selectedItem() (models.ContentItem, bool) {
	row := m.uiState.SelectedRow()
	var items []models.ContentItem
	switch m.uiState.View() {
	case state.BoardView:
		return m.currentCard()
	case state.TableView, state.FeedView:
		items = m.listItems()
	case state.DeadlinesView:
		for _, d := range m.deadlines() {
			items = append(items, d.Item)
		}
	case state.CalendarView:
		items = m.dayItems()
	}
	if row < 0 || row >= len(items) {
		return models.ContentItem{}, false
	}
	return items[row], true
}

// columnTitleOf returns the title of the column holding itemID
func (m Model) columnTitleOf(itemID string) string {
	ci, _, ok := m.board.FindItem(itemID)
	if !ok {
		return ""
	}
	return m.board.Columns[ci].Title
}
