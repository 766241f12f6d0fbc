package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/database"
	"github.com/thenoetrevino/plano/internal/logging"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/types"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Board.DatabasePath = database.MemoryPath
	return cfg
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := New(context.Background(), memoryConfig(), WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.BoardService)
	b, err := a.BoardService.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, b.ItemCount(), "sample board seeded")
}

func TestNew_OptionsReachTheEngine(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, time.May, 4, 12, 0, 0, 0, time.UTC)
	a, err := New(context.Background(), memoryConfig(),
		WithLogger(logging.Discard()),
		WithClock(func() time.Time { return now }),
		WithIDSource(types.Sequence("t-")),
	)
	require.NoError(t, err)
	defer a.Close()

	out, err := a.BoardService.AddItem(context.Background(), "idea")
	require.NoError(t, err)
	item, ok := out.Item()
	require.True(t, ok)
	assert.Equal(t, "t-1", item.ID)
	assert.Equal(t, "2030-05-04", item.ScheduledDate)
	assert.Equal(t, now, a.Now())
}

func TestNew_SeedFileFromConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns:\n  - id: idea\n    title: Ideas\n"), 0o644))

	cfg := memoryConfig()
	cfg.Board.SeedFile = path
	a, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer a.Close()

	b, err := a.BoardService.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, b.Columns, 1)
	assert.Equal(t, "Ideas", b.Columns[0].Title)
}

func TestNew_WithSeedOverride(t *testing.T) {
	t.Parallel()

	a, err := New(context.Background(), memoryConfig(),
		WithLogger(logging.Discard()),
		WithSeed(func() (models.Board, error) {
			return models.Board{Columns: models.DefaultColumns()}, nil
		}),
	)
	require.NoError(t, err)
	defer a.Close()

	b, err := a.BoardService.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, b.ItemCount())
}

func TestClose(t *testing.T) {
	t.Parallel()

	a, err := New(context.Background(), memoryConfig(), WithLogger(logging.Discard()))
	require.NoError(t, err)
	assert.NoError(t, a.Close())

	assert.NoError(t, (&App{}).Close())
}
