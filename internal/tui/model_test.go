package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/testutil"
	"github.com/thenoetrevino/plano/internal/tui/state"
)

// setupTestModel creates a sized model over the sample board
func setupTestModel(t *testing.T, opts ...app.Option) (Model, *app.App) {
	t.Helper()

	a := testutil.NewTestApp(t, opts...)
	m := New(context.Background(), a)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return newModel.(Model), a
}

// press sends a single printable key
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		r := []rune(k)[0]
		newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: k, Code: r}))
		m = newModel.(Model)
	}
	return m
}

// pressCode sends a special key such as enter or esc
func pressCode(m Model, code rune) Model {
	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: code}))
	return newModel.(Model)
}

func itemColumn(t *testing.T, a *app.App, itemID string) (models.ContentItem, string) {
	t.Helper()
	item, column, err := a.BoardService.Item(context.Background(), itemID)
	require.NoError(t, err)
	return item, column
}

func TestNew_LoadsBoard(t *testing.T) {
	m, _ := setupTestModel(t)

	assert.Len(t, m.board.Columns, 4)
	assert.Equal(t, state.BoardView, m.uiState.View())
	assert.Equal(t, state.NormalMode, m.uiState.Mode())

	card, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "1", card.ID)
}

func TestNew_DefaultViewFromConfig(t *testing.T) {
	a := testutil.NewTestApp(t)
	a.Config.Board.DefaultView = "calendar"

	m := New(context.Background(), a)
	assert.Equal(t, state.CalendarView, m.uiState.View())
	assert.Equal(t, testutil.FixedNow.Format(models.DateLayout), m.uiState.SelectedDay().Format(models.DateLayout))
}

func TestNavigation(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "j", "j")
	assert.Equal(t, 2, m.uiState.SelectedCard())

	m = press(t, m, "k", "k", "k")
	assert.Equal(t, 0, m.uiState.SelectedCard(), "cannot move above the first card")

	m = press(t, m, "l")
	assert.Equal(t, 1, m.uiState.SelectedColumn())

	m = pressCode(m, tea.KeyRight)
	m = pressCode(m, tea.KeyRight)
	m = pressCode(m, tea.KeyRight)
	assert.Equal(t, 3, m.uiState.SelectedColumn(), "cannot move past the last column")

	m = press(t, m, "h")
	assert.Equal(t, 2, m.uiState.SelectedColumn())
}

func TestNavigation_ClampsCardToShorterColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "j", "j", "j", "j")
	assert.Equal(t, 4, m.uiState.SelectedCard())

	// review-ready holds a single card
	m = press(t, m, "l", "l")
	assert.Equal(t, 0, m.uiState.SelectedCard())
}

func TestMoveCardRight_ChangesColumnAndStatus(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(t, m, "L")

	item, column := itemColumn(t, a, "1")
	assert.Equal(t, "In Progress", column)
	assert.Equal(t, models.StatusInProgress, item.Status)

	// selection follows the card to the bottom of the destination
	assert.Equal(t, 1, m.uiState.SelectedColumn())
	assert.Equal(t, 4, m.uiState.SelectedCard())
	card, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "1", card.ID)

	assert.Len(t, m.board.Columns[0].Items, 4)
	assert.Len(t, m.board.Columns[1].Items, 5)
}

func TestMoveCardLeft_FromFirstColumnIsNoOp(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(t, m, "H")

	_, column := itemColumn(t, a, "1")
	assert.Equal(t, "Idea", column)
	assert.Equal(t, 0, m.uiState.SelectedColumn())
	assert.False(t, m.notificationState.HasAny())
}

func TestMoveCardLeft_FromReviewReady(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(t, m, "l", "l") // review-ready: cal-3
	m = press(t, m, "H")

	item, column := itemColumn(t, a, "cal-3")
	assert.Equal(t, "In Progress", column)
	assert.Equal(t, models.StatusInProgress, item.Status)
	assert.Empty(t, m.board.Columns[2].Items)
}

func TestMoveCardDown_Reorders(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "J")

	ids := []string{}
	for _, item := range m.board.Columns[0].Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"2", "1", "3", "cal-1", "cal-6"}, ids)
	assert.Equal(t, 1, m.uiState.SelectedCard())

	m = press(t, m, "K", "K")
	assert.Equal(t, "1", m.board.Columns[0].Items[0].ID)
	assert.Equal(t, 0, m.uiState.SelectedCard())
}

func TestAddCard(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "l", "a")

	col := m.board.Columns[1]
	require.Len(t, col.Items, 5)
	added := col.Items[4]
	assert.Equal(t, "new-1", added.ID)
	assert.Equal(t, "Untitled", added.Title)
	assert.Equal(t, models.StatusInProgress, added.Status)
	assert.Equal(t, 4, m.uiState.SelectedCard())
}

func TestAddSection(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantIdx int
	}{
		{"right of selection", "c", 2},
		{"left of selection", "C", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := setupTestModel(t)

			m = press(t, m, "l", tt.key)

			require.Len(t, m.board.Columns, 5)
			assert.Equal(t, "New Section", m.board.Columns[tt.wantIdx].Title)
			assert.Equal(t, tt.wantIdx, m.uiState.SelectedColumn())
		})
	}
}

func TestRenameColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "R")
	require.Equal(t, state.RenameColumnMode, m.uiState.Mode())
	assert.Equal(t, "Idea", m.inputState.Input.Value())

	m.inputState.Input.SetValue("Drafts")
	m = pressCode(m, tea.KeyEnter)

	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, "Drafts", m.board.Columns[0].Title)
}

func TestRenameCard_EmptyTitleKeepsPrompt(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "e")
	require.Equal(t, state.RenameCardMode, m.uiState.Mode())

	m.inputState.Input.SetValue("   ")
	m = pressCode(m, tea.KeyEnter)

	assert.Equal(t, state.RenameCardMode, m.uiState.Mode())
	n, ok := m.notificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelWarning, n.Level)
	assert.Equal(t, "Post a Banner", m.board.Columns[0].Items[0].Title)

	m = pressCode(m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
}

func TestRenameCard_TypingIntoPrompt(t *testing.T) {
	m, a := setupTestModel(t)

	m = press(t, m, "e")
	m.inputState.Input.SetValue("")
	m = press(t, m, "H", "i")
	m = pressCode(m, tea.KeyEnter)

	item, _ := itemColumn(t, a, "1")
	assert.Equal(t, "Hi", item.Title)
}

func TestRemoveColumn(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		m, _ := setupTestModel(t)

		m = press(t, m, "l", "l", "l", "X")
		require.Equal(t, state.RemoveColumnConfirmMode, m.uiState.Mode())
		assert.Contains(t, ansi.Strip(m.View().Content), "Remove column 'Approved'?")

		m = press(t, m, "y")
		assert.Equal(t, state.NormalMode, m.uiState.Mode())
		require.Len(t, m.board.Columns, 3)
		assert.Equal(t, 2, m.uiState.SelectedColumn(), "selection clamps to the new last column")
	})

	t.Run("cancel", func(t *testing.T) {
		m, _ := setupTestModel(t)

		m = press(t, m, "X", "n")
		assert.Equal(t, state.NormalMode, m.uiState.Mode())
		assert.Len(t, m.board.Columns, 4)
	})

	t.Run("last column is kept", func(t *testing.T) {
		single := func() (models.Board, error) {
			return models.Board{Columns: []models.Column{{ID: "idea", Title: "Idea", Items: []models.ContentItem{}}}}, nil
		}
		m, _ := setupTestModel(t, app.WithSeed(single))

		m = press(t, m, "X", "y")
		assert.Len(t, m.board.Columns, 1)
		n, ok := m.notificationState.Latest()
		require.True(t, ok)
		assert.Equal(t, state.LevelInfo, n.Level)
	})
}

func TestSwitchView(t *testing.T) {
	m, _ := setupTestModel(t)

	m = pressCode(m, tea.KeyTab)
	assert.Equal(t, state.CalendarView, m.uiState.View())

	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
	m = newModel.(Model)
	assert.Equal(t, state.DeadlinesView, m.uiState.View(), "views wrap around")
}

func TestCalendarNavigation(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)
	day := func(m Model) string { return m.uiState.SelectedDay().Format(models.DateLayout) }

	assert.Equal(t, "2024-01-10", day(m))

	m = press(t, m, "l")
	assert.Equal(t, "2024-01-11", day(m))

	m = press(t, m, "j")
	assert.Equal(t, "2024-01-18", day(m))

	m = press(t, m, "]")
	assert.Equal(t, "2024-02-01", day(m))

	m = press(t, m, "[", "[")
	assert.Equal(t, "2023-12-01", day(m))

	m = press(t, m, "t")
	assert.Equal(t, "2024-01-10", day(m))
}

func TestCalendar_SelectsItemsOfTheDay(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)

	m = press(t, m, "l", "l")
	require.Equal(t, 2, m.rowCount())

	// the day schedule lists 10:00 before 7:00 AM
	item, ok := m.selectedItem()
	require.True(t, ok)
	assert.Equal(t, "cal-7", item.ID)

	m = pressCode(m, tea.KeyDown)
	item, _ = m.selectedItem()
	assert.Equal(t, "2", item.ID)

	m = pressCode(m, tea.KeyDown)
	assert.Equal(t, 1, m.uiState.SelectedRow())

	m = pressCode(m, tea.KeyUp)
	assert.Equal(t, 0, m.uiState.SelectedRow())
}

func TestCalendar_RescheduleSelectedItem(t *testing.T) {
	m, a := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)

	m = press(t, m, "l", "l")
	m = pressCode(m, tea.KeyDown)

	m = press(t, m, ">")
	moved, column := itemColumn(t, a, "2")
	assert.Equal(t, "2024-01-13", moved.ScheduledDate)
	assert.Equal(t, "idea", column)
	assert.Equal(t, "2024-01-13", m.uiState.SelectedDay().Format(models.DateLayout))
	selected, ok := m.selectedItem()
	require.True(t, ok)
	assert.Equal(t, "2", selected.ID)

	m = press(t, m, "H")
	moved, _ = itemColumn(t, a, "2")
	assert.Equal(t, "2024-01-12", moved.ScheduledDate)
	assert.Equal(t, 1, m.uiState.SelectedRow())
	selected, _ = m.selectedItem()
	assert.Equal(t, "2", selected.ID)
}

func TestCalendar_RescheduleKeepsStatus(t *testing.T) {
	m, a := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)

	m = press(t, m, "<")
	moved, column := itemColumn(t, a, "cal-3")
	assert.Equal(t, "2024-01-09", moved.ScheduledDate)
	assert.Equal(t, models.StatusReviewReady, moved.Status)
	assert.Equal(t, "review-ready", column)
	assert.Equal(t, "2024-01-09", m.uiState.SelectedDay().Format(models.DateLayout))

	content := ansi.Strip(m.View().Content)
	assert.Contains(t, content, "> ")
	assert.Contains(t, content, "Product Feature Highlight")
}

func TestCalendar_RescheduleOnEmptyDayIsNoop(t *testing.T) {
	m, a := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)
	before, err := a.BoardService.Board(context.Background())
	require.NoError(t, err)

	m = press(t, m, "l", ">")
	after, err := a.BoardService.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "2024-01-11", m.uiState.SelectedDay().Format(models.DateLayout))
}

func TestCalendar_AddOpensFormOnCursorDay(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.CalendarView)

	m = press(t, m, "l", "l", "a")
	require.Equal(t, state.CreateFormMode, m.uiState.Mode())
	assert.Equal(t, "2024-01-12", m.formState.Date)
}

func TestDeadlinesView_OpensDetail(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.DeadlinesView)

	require.Equal(t, 5, m.rowCount())

	m = pressCode(m, tea.KeyEnter)
	require.Equal(t, state.DetailMode, m.uiState.Mode())
	assert.Equal(t, "cal-3", m.uiState.DetailItem())

	content := ansi.Strip(m.View().Content)
	assert.Contains(t, content, "Product Feature Highlight")
	assert.Contains(t, content, "Review Ready")

	m = pressCode(m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
}

func TestTableView_RowsStayInRange(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.TableView)

	for range 20 {
		m = press(t, m, "j")
	}
	assert.Equal(t, 11, m.uiState.SelectedRow())

	item, ok := m.selectedItem()
	require.True(t, ok)
	assert.Equal(t, "2024-01-28", item.ScheduledDate, "rows are ordered by schedule")
}

func TestFilterMode_TogglesPlatform(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.TableView)

	m = press(t, m, "f")
	require.Equal(t, state.FilterMode, m.uiState.Mode())

	// first option is the first platform: tiktok
	m = pressCode(m, tea.KeySpace)
	m = pressCode(m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())

	items := m.listItems()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.True(t, item.HasPlatform(models.PlatformTikTok), item.ID)
	}
	assert.Less(t, len(items), 12)

	assert.Len(t, m.board.Items(), 12, "the board keeps every card")
}

func TestSearchMode(t *testing.T) {
	m, _ := setupTestModel(t)
	m.uiState.SetView(state.FeedView)

	m = press(t, m, "/")
	require.Equal(t, state.SearchMode, m.uiState.Mode())

	m = press(t, m, "n", "e", "w", "s", "l")
	assert.Equal(t, "newsl", m.filterState.Query())

	ids := []string{}
	for _, item := range m.listItems() {
		ids = append(ids, item.ID)
	}
	assert.Contains(t, ids, "cal-5")

	m = pressCode(m, tea.KeyEnter)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Equal(t, "newsl", m.filterState.Query(), "enter keeps the query")

	m = press(t, m, "/")
	m = pressCode(m, tea.KeyEscape)
	assert.Empty(t, m.filterState.Query(), "esc clears the query")
}

func TestCreateForm_OpenAndCancel(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "n")
	require.Equal(t, state.CreateFormMode, m.uiState.Mode())
	require.NotNil(t, m.formState.CreateForm)
	assert.Equal(t, "2024-01-10", m.formState.Date)

	// keys go to the form, not the board
	m = press(t, m, "q")
	assert.Equal(t, state.CreateFormMode, m.uiState.Mode())

	m = pressCode(m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
	assert.Nil(t, m.formState.CreateForm)
	assert.Len(t, m.board.Items(), 12)
}

func TestCreateContent(t *testing.T) {
	m, a := setupTestModel(t)
	m = press(t, m, "l")

	m.formState.Reset("2024-01-20")
	m.formState.Title = "  Spring Campaign  "
	m.formState.Platforms = []string{"linkedin"}
	m.createContent()

	item, column := itemColumn(t, a, "new-1")
	assert.Equal(t, "Idea", column)
	assert.Equal(t, "Spring Campaign", item.Title)
	assert.Equal(t, models.StatusIdea, item.Status)
	assert.Equal(t, "2024-01-20", item.ScheduledDate)

	assert.Equal(t, 0, m.uiState.SelectedColumn(), "selection jumps to the new card")
	card, ok := m.currentCard()
	require.True(t, ok)
	assert.Equal(t, "new-1", card.ID)
}

func TestCreateContent_RequiresPlatform(t *testing.T) {
	m, _ := setupTestModel(t)

	m.formState.Reset("2024-01-20")
	m.formState.Title = "No platforms"
	m.createContent()

	n, ok := m.notificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelWarning, n.Level)
	assert.Len(t, m.board.Items(), 12)
}

func TestView(t *testing.T) {
	t.Run("loading before the first resize", func(t *testing.T) {
		a := testutil.NewTestApp(t)
		m := New(context.Background(), a)
		assert.Equal(t, "Loading...", m.View().Content)
	})

	tests := []struct {
		view state.View
		want []string
	}{
		{state.BoardView, []string{"Idea (5)", "In Progress (4)", "Post a Banner"}},
		{state.CalendarView, []string{"January 2024", "Wednesday, January 10", "Product Feature Highlight"}},
		{state.TableView, []string{"Title", "Assignee", "Weekly Newsletter"}},
		{state.FeedView, []string{"Weekly Newsletter", "Anna Taylor"}},
		{state.AnalyticsView, []string{"January 2024", "By platform", "By status"}},
		{state.DeadlinesView, []string{"Upcoming Deadlines", "Today", "In 2 days"}},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			m, _ := setupTestModel(t)
			m.uiState.SetView(tt.view)

			content := ansi.Strip(m.View().Content)
			assert.Contains(t, content, "press ? for help")
			for _, want := range tt.want {
				assert.Contains(t, content, want)
			}
		})
	}
}

func TestHelpMode(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.uiState.Mode())
	content := ansi.Strip(m.View().Content)
	assert.Contains(t, content, "Keyboard Shortcuts")
	assert.Contains(t, content, "move card right")

	m = pressCode(m, tea.KeyEscape)
	assert.Equal(t, state.NormalMode, m.uiState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestUpdate_CancelledContextQuits(t *testing.T) {
	a := testutil.NewTestApp(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	cancel()

	m := New(ctx, a)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
