package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plano/internal/tui/components"
	"github.com/thenoetrevino/plano/internal/tui/layers"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// View renders the current state of the application.
// The current screen is the base layer; forms, prompts and overlays are
// centered modal layers on top of it.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderScreen()),
	}
	if modal := m.renderModal(); modal != nil {
		stack = append(stack, modal)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderScreen stacks the tab bar, the current view and the status bar
func (m Model) renderScreen() string {
	names := make([]string, len(state.Views))
	for i, v := range state.Views {
		names[i] = v.String()
	}

	notification := ""
	if n, ok := m.notificationState.Latest(); ok {
		notification = components.RenderNotification(n)
	}

	tabs := components.RenderTabs(names, int(m.uiState.View()), m.uiState.Width(), notification)
	body := lipgloss.NewStyle().
		Height(m.uiState.ContentHeight()).
		MaxHeight(m.uiState.ContentHeight()).
		Render(m.renderBody())
	status := components.RenderStatusBar(components.StatusBarProps{
		Width:   m.uiState.Width(),
		Context: m.statusContext(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status)
}

// renderBody renders the current view
func (m Model) renderBody() string {
	width, height := m.uiState.Width(), m.uiState.ContentHeight()
	row := m.uiState.SelectedRow()

	switch m.uiState.View() {
	case state.CalendarView:
		selectedID := ""
		if item, ok := m.selectedItem(); ok {
			selectedID = item.ID
		}
		return components.RenderCalendar(m.listItems(), m.uiState.SelectedDay(), m.today(), selectedID)
	case state.TableView:
		return components.RenderTable(m.listItems(), row, width, height)
	case state.FeedView:
		return components.RenderFeed(m.listItems(), row, width, height)
	case state.AnalyticsView:
		return components.RenderAnalytics(m.monthSummary())
	case state.DeadlinesView:
		return components.RenderDeadlines(m.deadlines(), row, width)
	default:
		return components.RenderBoard(
			m.board,
			m.uiState.SelectedColumn(),
			m.uiState.SelectedCard(),
			m.uiState.ViewportOffset(),
			m.uiState.ViewportSize(),
			height,
			m.uiState.CardScrollOffset,
		)
	}
}

// statusContext describes the search prompt or the active filters
func (m Model) statusContext() string {
	if m.uiState.Mode() == state.SearchMode {
		return m.searchState.Input.View()
	}
	if !m.filterState.Active() {
		return ""
	}

	var parts []string
	c := m.filterState.Criteria()
	if n := len(c.Platforms) + len(c.Statuses) + len(c.Assignees) + len(c.ContentTypes); n > 0 {
		parts = append(parts, fmt.Sprintf("%d filters", n))
	}
	if q := m.filterState.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	if m.uiState.View() == state.BoardView {
		parts = append(parts, "(list views only)")
	}
	return strings.Join(parts, "  ")
}

// renderModal returns the overlay of the current mode, or nil
func (m Model) renderModal() *lipgloss.Layer {
	var content string
	width := m.uiState.Width()

	switch m.uiState.Mode() {
	case state.CreateFormMode:
		if m.formState.CreateForm == nil {
			return nil
		}
		content = components.FormBoxStyle.
			Width(layers.ModalWidth(width, 50, 80)).
			Render(components.TitleStyle.Render("Create Content") + "\n\n" + m.formState.CreateForm.View())

	case state.RenameCardMode, state.RenameColumnMode:
		content = components.EditInputBoxStyle.
			Width(50).
			Render(m.inputState.Prompt + "\n" + m.inputState.Input.View())

	case state.RemoveColumnConfirmMode:
		content = m.renderRemoveColumnConfirm()

	case state.DetailMode:
		content = m.renderDetail()

	case state.HelpMode:
		content = components.HelpBoxStyle.Render(
			components.TitleStyle.Render("PLANO - Keyboard Shortcuts") + "\n\n" +
				m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
				components.SubtleStyle.Render("esc: close"),
		)

	case state.FilterMode:
		content = components.PickerBoxStyle.Render(components.RenderFilterPicker(
			m.filterState.Options(m.board.Items()),
			m.filterState.Selected,
			m.filterState.Cursor(),
		))
	}

	return layers.CreateCenteredLayer(content, width, m.uiState.Height())
}

func (m Model) renderRemoveColumnConfirm() string {
	col, ok := m.currentColumn()
	if !ok {
		return ""
	}

	msg := fmt.Sprintf("Remove column '%s'?", col.Title)
	if n := len(col.Items); n > 0 {
		msg += fmt.Sprintf("\nThis will also discard %d item(s).", n)
	}
	return components.DeleteConfirmBoxStyle.
		Width(50).
		Render(msg + "\n\n[y]es  [n]o")
}

func (m Model) renderDetail() string {
	ci, ii, ok := m.board.FindItem(m.uiState.DetailItem())
	if !ok {
		return ""
	}
	item := m.board.Columns[ci].Items[ii]

	boxWidth := layers.ModalWidth(m.uiState.Width(), 40, 90)
	return components.HelpBoxStyle.
		Width(boxWidth).
		Render(components.RenderDetail(item, m.columnTitleOf(item.ID), boxWidth-6, m.mdStyle))
}
