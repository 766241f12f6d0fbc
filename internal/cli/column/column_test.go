package column

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/testutil"
	clitest "github.com/thenoetrevino/plano/internal/testutil/cli"
)

func TestColumnList_JSON(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), []string{"list", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	columns := result["data"].([]any)
	require.Len(t, columns, 4)

	first := columns[0].(map[string]any)
	assert.Equal(t, "idea", first["id"])
	assert.Equal(t, "Idea", first["title"])
	assert.Equal(t, float64(5), first["itemCount"])
	assert.Equal(t, "idea", first["status"])
}

func TestColumnList_Quiet(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), []string{"list", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "idea\nin-progress\nreview-ready\napproved\n", output)
}

func TestColumnList_Human(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "Columns (4)")
	assert.Contains(t, output, "Review Ready")
}

func TestColumnAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		side      string
		wantIndex int
	}{
		{"right of idea", "right", 1},
		{"left of idea", "left", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testApp := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
				[]string{"add", "--anchor", "idea", "--side", tt.side, "--json"})
			require.NoError(t, err)

			data := testutil.JSONData(t, output)
			assert.Equal(t, "section-new-1", data["id"])
			assert.Equal(t, models.NewSectionTitle, data["title"])
			assert.Equal(t, float64(tt.wantIndex), data["position"])
			assert.Equal(t, float64(0), data["itemCount"])

			b, err := testApp.BoardService.Board(context.Background())
			require.NoError(t, err)
			assert.Len(t, b.Columns, 5)
			assert.Equal(t, "section-new-1", b.Columns[tt.wantIndex].ID)
		})
	}
}

func TestColumnAdd_UnknownAnchor(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"add", "--anchor", "nope", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "COLUMN_NOT_FOUND", result["error"].(map[string]any)["code"])
}

func TestColumnAdd_InvalidSide(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"add", "--anchor", "idea", "--side", "middle"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestColumnRename(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"rename", "--column", "idea", "--title", "  Backlog  ", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "idea\n", output)

	b, err := testApp.BoardService.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Backlog", b.Columns[0].Title)
	assert.Len(t, b.Columns[0].Items, 5)
}

func TestColumnRename_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown column", []string{"rename", "--column", "nope", "--title", "X"}, cli.ExitNotFound},
		{"blank title", []string{"rename", "--column", "idea", "--title", "   "}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testApp := clitest.SetupCLITest(t)

			_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
		})
	}
}

func TestColumnRemove(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(),
		[]string{"remove", "--column", "in-progress", "--json"})
	require.NoError(t, err)

	data := testutil.JSONData(t, output)
	assert.Equal(t, "in-progress", data["id"])
	assert.Equal(t, float64(4), data["discardedItems"])
	assert.Equal(t, float64(3), data["columns"])

	items, err := testApp.BoardService.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 8)
}

func TestColumnRemove_LastColumn(t *testing.T) {
	t.Parallel()
	testApp := clitest.SetupCLITest(t)

	for _, id := range []string{"idea", "in-progress", "review-ready"} {
		_, err := clitest.ExecuteCLICommand(t, testApp, ColumnCmd(), []string{"remove", "--column", id, "--quiet"})
		require.NoError(t, err)
	}

	res, err := clitest.ExecuteCLICommandFull(t, context.Background(), testApp, ColumnCmd(),
		[]string{"remove", "--column", "approved"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrLastColumn)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, res.Stderr, "last column")

	b, err := testApp.BoardService.Board(context.Background())
	require.NoError(t, err)
	assert.Len(t, b.Columns, 1)
}
