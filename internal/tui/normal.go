package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/tui/components"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode. Global keys are
// checked first, then the keys of the current view.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.NextView:
		return m.switchView(1)
	case "shift+tab":
		return m.switchView(-1)
	case km.Search:
		m.searchState.Start("Search", "", m.filterState.Query())
		m.uiState.SetMode(state.SearchMode)
		return m, nil
	case km.Filter:
		m.uiState.SetMode(state.FilterMode)
		return m, nil
	case km.CreateContent:
		return m.startCreateForm()
	}

	switch m.uiState.View() {
	case state.BoardView:
		return m.handleBoardKey(key)
	case state.CalendarView:
		return m.handleCalendarKey(key)
	case state.AnalyticsView:
		return m.handleAnalyticsKey(key)
	default:
		return m.handleListKey(key)
	}
}

// switchView cycles the screens and keeps the list cursor valid
func (m Model) switchView(delta int) (tea.Model, tea.Cmd) {
	m.uiState.CycleView(delta)
	m.uiState.ClampRow(m.rowCount())
	return m, nil
}

// ============================================================================
// BOARD VIEW
// ============================================================================

func (m Model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		m.navigateColumn(-1)
	case km.NextColumn, "right":
		m.navigateColumn(1)
	case km.PrevCard, "up":
		m.navigateCard(-1)
	case km.NextCard, "down":
		m.navigateCard(1)
	case km.MoveCardLeft:
		m.moveCardAcross(-1)
	case km.MoveCardRight:
		m.moveCardAcross(1)
	case km.MoveCardUp:
		m.moveCardWithin(-1)
	case km.MoveCardDown:
		m.moveCardWithin(1)
	case km.AddCard:
		m.addCard()
	case km.RenameCard:
		return m.startRenameCard()
	case km.ViewCard:
		return m.openDetail()
	case km.AddSectionLeft:
		m.addSection(board.SideLeft)
	case km.AddSectionRight:
		m.addSection(board.SideRight)
	case km.RenameColumn:
		return m.startRenameColumn()
	case km.RemoveColumn:
		if _, ok := m.currentColumn(); ok {
			m.uiState.SetMode(state.RemoveColumnConfirmMode)
		}
	}
	return m, nil
}

// visibleCards is the number of cards that fit in a board column
func (m Model) visibleCards() int {
	return components.VisibleCards(m.uiState.ContentHeight())
}

// navigateColumn moves the selection to an adjacent column
func (m *Model) navigateColumn(delta int) {
	target := m.uiState.SelectedColumn() + delta
	if target < 0 || target >= len(m.board.Columns) {
		return
	}
	m.selectCard(target, m.uiState.SelectedCard())
}

// navigateCard moves the selection within the current column
func (m *Model) navigateCard(delta int) {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	target := m.uiState.SelectedCard() + delta
	if target < 0 || target >= len(col.Items) {
		return
	}
	m.selectCard(m.uiState.SelectedColumn(), target)
}

// selectCard selects a card and scrolls it into view, clamping the card
// index to the column
func (m *Model) selectCard(colIdx, cardIdx int) {
	col := m.board.Columns[colIdx]
	cardIdx = max(min(cardIdx, len(col.Items)-1), 0)

	m.uiState.SetSelectedColumn(colIdx)
	m.uiState.SetSelectedCard(cardIdx)
	m.uiState.EnsureSelectionVisible(colIdx)
	m.uiState.EnsureCardVisible(col.ID, cardIdx, m.visibleCards())
}

// moveCardAcross moves the selected card to the end of the adjacent column
// and follows it
func (m *Model) moveCardAcross(delta int) {
	col, ok := m.currentColumn()
	if !ok || len(col.Items) == 0 {
		return
	}
	target := m.uiState.SelectedColumn() + delta
	if target < 0 || target >= len(m.board.Columns) {
		return
	}
	dest := m.board.Columns[target]

	m.moveCard(board.MoveRequest{
		Source:      board.Location{ColumnID: col.ID, Index: m.uiState.SelectedCard()},
		Destination: &board.Location{ColumnID: dest.ID, Index: len(dest.Items)},
	}, target, len(dest.Items))
}

// moveCardWithin reorders the selected card inside its column
func (m *Model) moveCardWithin(delta int) {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	from := m.uiState.SelectedCard()
	to := from + delta
	if from >= len(col.Items) || to < 0 || to >= len(col.Items) {
		return
	}

	m.moveCard(board.MoveRequest{
		Source:      board.Location{ColumnID: col.ID, Index: from},
		Destination: &board.Location{ColumnID: col.ID, Index: to},
	}, m.uiState.SelectedColumn(), to)
}

func (m *Model) moveCard(req board.MoveRequest, colIdx, cardIdx int) {
	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.MoveItem(ctx, req)
	if err != nil {
		m.logger.Error("Error moving card", "error", err)
		m.notificationState.Add(state.LevelError, "Error moving card")
		return
	}
	m.setBoard(out.Board)
	if out.Applied {
		m.selectCard(colIdx, cardIdx)
	}
}

// addCard appends a default card to the selected column and selects it
func (m *Model) addCard() {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.AddItem(ctx, col.ID)
	if err != nil {
		m.logger.Error("Error adding card", "error", err)
		m.notificationState.Add(state.LevelError, "Error adding card")
		return
	}
	m.setBoard(out.Board)
	if ci, ii, ok := out.Board.FindItem(out.ItemID); ok {
		m.selectCard(ci, ii)
	}
}

// addSection inserts an empty section next to the selected column
func (m *Model) addSection(side board.Side) {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.AddColumn(ctx, col.ID, side)
	if err != nil {
		m.logger.Error("Error adding section", "error", err)
		m.notificationState.Add(state.LevelError, "Error adding section")
		return
	}
	m.setBoard(out.Board)
	if idx := out.Board.ColumnIndex(out.ColumnID); idx >= 0 {
		m.selectCard(idx, 0)
	}
}

// openDetail shows the selected item of the current view
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	m.uiState.SetDetailItem(item.ID)
	m.uiState.SetMode(state.DetailMode)
	return m, nil
}

// ============================================================================
// CALENDAR, ANALYTICS AND LIST VIEWS
// ============================================================================

// handleCalendarKey moves the day cursor, selects items on the cursor day and
// reschedules the selected item. Arrow up and down pick an item of the day.
func (m Model) handleCalendarKey(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch key {
	case "up":
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() - 1)
		m.uiState.ClampRow(m.rowCount())
		return m, nil
	case "down":
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() + 1)
		m.uiState.ClampRow(m.rowCount())
		return m, nil
	case km.RescheduleEarlier, km.MoveCardLeft:
		m.rescheduleSelected(-1)
		return m, nil
	case km.RescheduleLater, km.MoveCardRight:
		m.rescheduleSelected(1)
		return m, nil
	case km.ViewCard:
		return m.openDetail()
	case km.RenameCard:
		return m.startRenameCard()
	case km.AddCard:
		return m.startCreateForm()
	case km.PrevColumn, "left":
		m.uiState.ShiftDay(-1)
	case km.NextColumn, "right":
		m.uiState.ShiftDay(1)
	case km.PrevCard:
		m.uiState.ShiftDay(-7)
	case km.NextCard:
		m.uiState.ShiftDay(7)
	case km.PrevMonth:
		m.uiState.ShiftMonth(-1)
	case km.NextMonth:
		m.uiState.ShiftMonth(1)
	case km.GoToday:
		m.uiState.SetSelectedDay(m.today())
	}
	m.uiState.SetSelectedRow(0)
	return m, nil
}

// rescheduleSelected moves the selected calendar item by delta days. The day
// cursor follows the item.
func (m *Model) rescheduleSelected(delta int) {
	item, ok := m.selectedItem()
	if !ok {
		return
	}
	from, ok := calendar.ParseDate(item.ScheduledDate)
	if !ok {
		from = m.uiState.SelectedDay()
	}
	to := from.AddDate(0, 0, delta)

	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.RescheduleItem(ctx, item.ID, calendar.DayKey(to))
	if err != nil {
		m.reportError("rescheduling", err)
		return
	}
	m.setBoard(out.Board)
	if !out.Applied {
		return
	}

	m.uiState.SetSelectedDay(to)
	for i, it := range m.dayItems() {
		if it.ID == item.ID {
			m.uiState.SetSelectedRow(i)
			break
		}
	}
}

func (m Model) handleAnalyticsKey(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch key {
	case km.PrevMonth, km.PrevColumn, "left":
		m.uiState.ShiftMonth(-1)
	case km.NextMonth, km.NextColumn, "right":
		m.uiState.ShiftMonth(1)
	case km.GoToday:
		m.uiState.SetSelectedDay(m.today())
	}
	return m, nil
}

// handleListKey drives the table, feed and deadlines views
func (m Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch key {
	case km.PrevCard, "up":
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() - 1)
	case km.NextCard, "down":
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() + 1)
	case "g":
		m.uiState.SetSelectedRow(0)
	case "G":
		m.uiState.SetSelectedRow(m.rowCount() - 1)
	case km.ViewCard:
		return m.openDetail()
	case km.RenameCard:
		return m.startRenameCard()
	}
	m.uiState.ClampRow(m.rowCount())
	return m, nil
}

// monthSummary summarizes the filtered items of the month under the calendar cursor
func (m Model) monthSummary() calendar.Summary {
	return calendar.MonthSummary(m.listItems(), m.uiState.SelectedDay())
}
