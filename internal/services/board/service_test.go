package board

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/database"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// syncBuffer guards log output written from parallel subtests
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func seedBoard() (models.Board, error) {
	return models.Board{Columns: []models.Column{
		{ID: "idea", Title: "Idea", Items: []models.ContentItem{
			{ID: "A", Title: "Alpha", ScheduledDate: "2024-01-05", Platforms: []models.Platform{models.PlatformTikTok}, Status: models.StatusIdea},
			{ID: "B", Title: "Beta", Platforms: []models.Platform{models.PlatformInstagram}, Status: models.StatusIdea},
		}},
		{ID: "in-progress", Title: "In Progress", Items: []models.ContentItem{}},
	}}, nil
}

// setupService creates a service over an in-memory database with a log buffer
func setupService(t *testing.T) (Service, *database.BoardRepo, *syncBuffer) {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logs := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := board.NewEngine(
		board.WithIDSource(types.Sequence("id-")),
		board.WithClock(func() time.Time { return time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC) }),
	)
	repo := database.NewBoardRepo(db)
	return NewService(repo, engine, seedBoard, logger), repo, logs
}

func columnItemIDs(b models.Board, columnID string) []string {
	col, _ := b.Column(columnID)
	out := []string{}
	for _, it := range col.Items {
		out = append(out, it.ID)
	}
	return out
}

// ============================================================================
// READS
// ============================================================================

func TestBoard_SeedsAndPersistsOnFirstLoad(t *testing.T) {
	t.Parallel()

	svc, repo, logs := setupService(t)
	b, err := svc.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, b.ItemCount())

	stored, err := repo.LoadBoard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, b, stored)
	assert.Contains(t, logs.String(), "seeded new board")
}

func TestItem(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupService(t)
	item, columnID, err := svc.Item(context.Background(), "B")
	require.NoError(t, err)
	assert.Equal(t, "Beta", item.Title)
	assert.Equal(t, "idea", columnID)

	_, _, err = svc.Item(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

// ============================================================================
// MOVES
// ============================================================================

func TestMoveItem_AppliesAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo, _ := setupService(t)

	out, err := svc.MoveItem(ctx, board.MoveRequest{
		Source:      board.Location{ColumnID: "idea", Index: 0},
		Destination: &board.Location{ColumnID: "in-progress", Index: 0},
	})
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, "A", out.ItemID)

	moved, ok := out.Item()
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, moved.Status)

	stored, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, columnItemIDs(stored, "idea"))
	assert.Equal(t, []string{"A"}, columnItemIDs(stored, "in-progress"))
}

func TestMoveItem_InvalidReferenceIsQuietNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, logs := setupService(t)
	before, err := svc.Board(ctx)
	require.NoError(t, err)

	out, err := svc.MoveItem(ctx, board.MoveRequest{
		Source:      board.Location{ColumnID: "idea", Index: 7},
		Destination: &board.Location{ColumnID: "in-progress", Index: 0},
	})
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.False(t, out.Cancelled)
	assert.ErrorIs(t, out.Reason, models.ErrIndexOutOfRange)
	assert.Equal(t, before, out.Board)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "ignored invalid board operation")
}

func TestMoveItem_CancelledDragIsDistinct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, logs := setupService(t)

	out, err := svc.MoveItem(ctx, board.MoveRequest{Source: board.Location{ColumnID: "idea", Index: 0}})
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
	assert.False(t, out.Applied)
	assert.NoError(t, out.Reason)
	assert.Contains(t, logs.String(), "drag cancelled")
	assert.NotContains(t, logs.String(), "level=WARN")
}

func TestMoveToColumn(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupService(t)
	out, err := svc.MoveToColumn(context.Background(), "B", "in-progress")
	require.NoError(t, err)
	assert.True(t, out.Applied)
	assert.Equal(t, []string{"B"}, columnItemIDs(out.Board, "in-progress"))
}

// ============================================================================
// ITEM WRITES
// ============================================================================

func TestCreateContent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)

	out, err := svc.CreateContent(ctx, models.CreateContentData{
		Title:         "  Launch  ",
		ScheduledDate: "2024-02-01",
		Platforms:     []models.Platform{models.PlatformInstagram},
	})
	require.NoError(t, err)
	require.True(t, out.Applied)

	created, ok := out.Item()
	require.True(t, ok)
	assert.Equal(t, "Launch", created.Title)
	assert.Equal(t, models.StatusIdea, created.Status)
	assert.Equal(t, []string{"A", "B", created.ID}, columnItemIDs(out.Board, "idea"))
}

func TestCreateContent_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateContent(ctx, models.CreateContentData{Title: " ", Platforms: []models.Platform{models.PlatformTikTok}})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateContent(ctx, models.CreateContentData{Title: strings.Repeat("x", 256), Platforms: []models.Platform{models.PlatformTikTok}})
	assert.ErrorIs(t, err, ErrTitleTooLong)

	_, err = svc.CreateContent(ctx, models.CreateContentData{Title: "ok"})
	assert.ErrorIs(t, err, ErrNoPlatforms)

	out, err := svc.CreateContent(ctx, models.CreateContentData{Title: "ok", ScheduledDate: "someday", Platforms: []models.Platform{models.PlatformTikTok}})
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.ErrorIs(t, out.Reason, models.ErrInvalidDate)
}

func TestAddItemRenameAndReschedule(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)

	out, err := svc.AddItem(ctx, "in-progress")
	require.NoError(t, err)
	require.True(t, out.Applied)
	card, _ := out.Item()
	assert.Equal(t, models.StatusInProgress, card.Status)
	assert.Equal(t, "2024-01-03", card.ScheduledDate)

	out, err = svc.RenameItem(ctx, card.ID, "Real title")
	require.NoError(t, err)
	renamed, _ := out.Item()
	assert.Equal(t, "Real title", renamed.Title)

	out, err = svc.RescheduleItem(ctx, card.ID, "2024-04-01")
	require.NoError(t, err)
	moved, _ := out.Item()
	assert.Equal(t, "2024-04-01", moved.ScheduledDate)

	out, err = svc.RescheduleItem(ctx, card.ID, "April")
	require.NoError(t, err)
	assert.ErrorIs(t, out.Reason, models.ErrInvalidDate)
}

func TestUpdateItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)
	item, _, err := svc.Item(ctx, "A")
	require.NoError(t, err)

	item.Comments = 9
	out, err := svc.UpdateItem(ctx, item)
	require.NoError(t, err)
	updated, _ := out.Item()
	assert.Equal(t, 9, updated.Comments)

	out, err = svc.UpdateItem(ctx, models.ContentItem{ID: "ghost", Title: "Ghost"})
	require.NoError(t, err)
	assert.ErrorIs(t, out.Reason, models.ErrItemNotFound)
}

func TestUpdateItem_ValidatesTitle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)
	item, _, err := svc.Item(ctx, "A")
	require.NoError(t, err)

	long := item
	long.Title = strings.Repeat("x", maxTitleLength+1)
	_, err = svc.UpdateItem(ctx, long)
	assert.ErrorIs(t, err, ErrTitleTooLong)

	blank := item
	blank.Title = "   "
	_, err = svc.UpdateItem(ctx, blank)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	padded := item
	padded.Title = "  Trimmed  "
	out, err := svc.UpdateItem(ctx, padded)
	require.NoError(t, err)
	updated, _ := out.Item()
	assert.Equal(t, "Trimmed", updated.Title)

	stored, _, err := svc.Item(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "Trimmed", stored.Title)
}

// ============================================================================
// COLUMN WRITES
// ============================================================================

func TestColumnLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)

	out, err := svc.AddColumn(ctx, "idea", board.SideRight)
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, "section-id-1", out.ColumnID)
	assert.Equal(t, out.ColumnID, out.Board.Columns[1].ID)

	out, err = svc.RenameColumn(ctx, out.ColumnID, "Backlog")
	require.NoError(t, err)
	assert.Equal(t, "Backlog", out.Board.Columns[1].Title)

	_, err = svc.RenameColumn(ctx, "idea", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	out, err = svc.RemoveColumn(ctx, "idea")
	require.NoError(t, err)
	require.True(t, out.Applied)
	assert.Equal(t, 0, out.Board.ItemCount())

	out, err = svc.RemoveColumn(ctx, "section-id-1")
	require.NoError(t, err)
	require.True(t, out.Applied)

	out, err = svc.RemoveColumn(ctx, "in-progress")
	require.NoError(t, err)
	assert.False(t, out.Applied)
	assert.ErrorIs(t, out.Reason, models.ErrLastColumn)
	assert.Len(t, out.Board.Columns, 1)
}

func TestReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.RemoveColumn(ctx, "idea")
	require.NoError(t, err)

	b, err := svc.Reset(ctx)
	require.NoError(t, err)
	want, _ := seedBoard()
	assert.Equal(t, want, b)
}

func TestConcurrentMutationsAreSerialised(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := setupService(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "in-progress")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	b, err := svc.Board(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, b.ItemCount())
	require.NoError(t, board.Validate(b))
}
