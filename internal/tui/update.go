package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plano/internal/deadline"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	// Forms need ALL messages, not just key presses
	if m.uiState.Mode() == state.CreateFormMode {
		return m.updateCreateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleWindowResize records the terminal size and re-fits the viewport
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.AdjustViewport(len(m.board.Columns))
	return m, nil
}

// handleKeyMsg dispatches key presses to the handler of the current mode
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.RenameCardMode, state.RenameColumnMode:
		return m.handleRenameMode(msg)
	case state.RemoveColumnConfirmMode:
		return m.handleRemoveColumnConfirm(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.FilterMode:
		return m.handleFilterMode(msg)
	}
	return m, nil
}

// handleHelpMode closes the help screen on any of its dismiss keys
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.config.KeyMappings.ShowHelp:
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleDetailMode closes the card detail, or starts renaming the card
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", m.config.KeyMappings.ViewCard:
		m.uiState.SetMode(state.NormalMode)
	case m.config.KeyMappings.RenameCard:
		return m.startRenameCard()
	}
	return m, nil
}

// deadlines returns the upcoming deadlines of the filtered items
func (m Model) deadlines() []deadline.Deadline {
	return deadline.Upcoming(m.listItems(), m.app.Now(), m.config.Board.DeadlineCount)
}
