// Package board implements the "plano board" and "plano reset" commands
package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/models"
)

// BoardCmd returns the board command, which prints every column and its items
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board",
		Long: `Print every column of the board with its items, left to right.

Examples:
  plano board
  plano board --json | jq '.data.columns[].id'
`,
		RunE: runBoard,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	b, err := cliInstance.App.BoardService.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		for _, it := range b.Items() {
			formatter.ID(it.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(b)
	}

	printBoard(formatter.Writer(), b)
	return nil
}

func printBoard(w io.Writer, b models.Board) {
	for i, col := range b.Columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n",
			styles.TitleStyle.Render(col.Title),
			styles.SubtitleStyle.Render(fmt.Sprintf("(%s, %d)", col.ID, len(col.Items))))
		if len(col.Items) == 0 {
			fmt.Fprintln(w, styles.SubtitleStyle.Render("  (empty)"))
			continue
		}
		for _, it := range col.Items {
			date := it.ScheduledDate
			if date == "" {
				date = "unscheduled"
			}
			fmt.Fprintf(w, "  • %s %s  %s  %s\n",
				styles.SubtitleStyle.Render(it.ID),
				it.Title,
				styles.SubtitleStyle.Render(date),
				styles.RenderPlatforms(it.Platforms))
		}
	}
}
