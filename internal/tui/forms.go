package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/models"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
	"github.com/thenoetrevino/plano/internal/tui/huhforms"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// reportError logs a failed service call. Validation errors become warnings
// carrying their message; anything else is a generic error banner.
func (m *Model) reportError(action string, err error) {
	switch {
	case errors.Is(err, boardservice.ErrEmptyTitle),
		errors.Is(err, boardservice.ErrTitleTooLong),
		errors.Is(err, boardservice.ErrNoPlatforms):
		m.notificationState.Add(state.LevelWarning, err.Error())
	default:
		m.logger.Error("Error "+action, "error", err)
		m.notificationState.Add(state.LevelError, "Error "+action)
	}
}

// ============================================================================
// CREATE CONTENT FORM
// ============================================================================

// startCreateForm opens the create-content form. New content is scheduled on
// the calendar cursor in the calendar view and on today elsewhere.
func (m Model) startCreateForm() (tea.Model, tea.Cmd) {
	date := m.today()
	if m.uiState.View() == state.CalendarView {
		date = m.uiState.SelectedDay()
	}

	fs := m.formState
	fs.Reset(calendar.DayKey(date))
	fs.CreateForm = huhforms.CreateContentForm(huhforms.ContentFields{
		Title:       &fs.Title,
		Description: &fs.Description,
		Date:        &fs.Date,
		Time:        &fs.Time,
		Platforms:   &fs.Platforms,
		ContentType: &fs.ContentType,
		Confirm:     &fs.Confirm,
	}).WithTheme(huhforms.CreatePlanoTheme(m.config.ColorScheme))

	m.uiState.SetMode(state.CreateFormMode)
	return m, fs.CreateForm.Init()
}

// updateCreateForm handles all messages while the create form is open
func (m Model) updateCreateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.formState
	if fs.CreateForm == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.closeCreateForm()
		return m, tea.ClearScreen
	}

	model, cmd := fs.CreateForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.CreateForm = form
	}

	switch fs.CreateForm.State {
	case huh.StateCompleted:
		if fs.Confirm {
			m.createContent()
		}
		m.closeCreateForm()
		return m, tea.ClearScreen
	case huh.StateAborted:
		m.closeCreateForm()
		return m, tea.ClearScreen
	}
	return m, cmd
}

func (m *Model) closeCreateForm() {
	m.formState.CreateForm = nil
	m.uiState.SetMode(state.NormalMode)
}

// createContent submits the form values and selects the new card
func (m *Model) createContent() {
	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.CreateContent(ctx, m.formState.Data())
	if err != nil {
		m.reportError("creating content", err)
		return
	}
	m.setBoard(out.Board)
	if !out.Applied {
		m.notificationState.Add(state.LevelInfo, "No idea column to add content to")
		return
	}
	if ci, ii, ok := out.Board.FindItem(out.ItemID); ok {
		m.selectCard(ci, ii)
	}
	m.notificationState.Add(state.LevelInfo, "Content created")
}

// ============================================================================
// RENAME PROMPTS
// ============================================================================

// startRenameCard opens the rename prompt on the item of the detail overlay,
// or on the selected item of the current view
func (m Model) startRenameCard() (tea.Model, tea.Cmd) {
	id := m.uiState.DetailItem()
	if m.uiState.Mode() != state.DetailMode {
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		id = item.ID
	}
	ci, ii, ok := m.board.FindItem(id)
	if !ok {
		return m, nil
	}

	m.inputState.Start("Rename card", id, m.board.Columns[ci].Items[ii].Title)
	m.uiState.SetMode(state.RenameCardMode)
	return m, nil
}

// startRenameColumn opens the rename prompt on the selected column
func (m Model) startRenameColumn() (tea.Model, tea.Cmd) {
	col, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	m.inputState.Start("Rename column", col.ID, col.Title)
	m.uiState.SetMode(state.RenameColumnMode)
	return m, nil
}

// handleRenameMode edits the prompt text; enter saves and esc cancels
func (m Model) handleRenameMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputState.Clear()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		m.submitRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputState.Input, cmd = m.inputState.Input.Update(msg)
	return m, cmd
}

func (m *Model) submitRename() {
	ctx, cancel := m.dbContext()
	defer cancel()

	target, title := m.inputState.TargetID, m.inputState.Value()
	mode := m.uiState.Mode()

	var (
		out boardservice.Outcome
		err error
	)
	if mode == state.RenameColumnMode {
		out, err = m.app.BoardService.RenameColumn(ctx, target, title)
	} else {
		out, err = m.app.BoardService.RenameItem(ctx, target, title)
	}
	if err != nil {
		// keep the prompt open so the title can be fixed
		m.reportError("renaming", err)
		return
	}

	m.setBoard(out.Board)
	m.inputState.Clear()
	m.uiState.SetMode(state.NormalMode)
}

// ============================================================================
// REMOVE COLUMN CONFIRMATION
// ============================================================================

func (m Model) handleRemoveColumnConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.removeColumn()
		m.uiState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m *Model) removeColumn() {
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	ctx, cancel := m.dbContext()
	defer cancel()

	out, err := m.app.BoardService.RemoveColumn(ctx, col.ID)
	if err != nil {
		m.reportError("removing column", err)
		return
	}
	if errors.Is(out.Reason, models.ErrLastColumn) {
		m.notificationState.Add(state.LevelInfo, "The last column cannot be removed")
	}
	m.setBoard(out.Board)
}

// ============================================================================
// SEARCH AND FILTER
// ============================================================================

// handleSearchMode filters the list views as the query is typed
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterState.SetQuery("")
		m.searchState.Clear()
		m.uiState.SetMode(state.NormalMode)
		m.uiState.ClampRow(m.rowCount())
		return m, nil
	case "enter":
		m.searchState.Input.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchState.Input, cmd = m.searchState.Input.Update(msg)
	m.filterState.SetQuery(m.searchState.Input.Value())
	m.uiState.SetSelectedRow(0)
	return m, cmd
}

// handleFilterMode moves the picker cursor and toggles filter values
func (m Model) handleFilterMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	opts := m.filterState.Options(m.board.Items())
	km := m.config.KeyMappings

	switch msg.String() {
	case "esc", "enter", km.Filter:
		m.uiState.SetMode(state.NormalMode)
	case km.PrevCard, "up":
		m.filterState.MoveCursor(-1, len(opts))
	case km.NextCard, "down":
		m.filterState.MoveCursor(1, len(opts))
	case "space", " ":
		if c := m.filterState.Cursor(); c >= 0 && c < len(opts) {
			m.filterState.Toggle(opts[c])
		}
	case "x":
		m.filterState.Reset()
	}
	m.uiState.ClampRow(m.rowCount())
	return m, nil
}
