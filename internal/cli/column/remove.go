package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// RemoveCmd returns the column remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a column and the items it holds",
		Long: `Remove a column from the board. Items in the column are discarded.
The last remaining column cannot be removed.

Examples:
  plano column remove --column=section-1f0c
  plano column remove --column=section-1f0c --json
`,
		RunE: runRemove,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	columnID, err := parser.ParseString("column")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	before, err := cliInstance.App.BoardService.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	removed, _ := summarize(before, columnID)

	out, err := cliInstance.App.BoardService.RemoveColumn(ctx, columnID)
	if err := cli.CheckOutcome(formatter, out, err, "List columns with: plano column list"); err != nil {
		return err
	}

	if formatter.Quiet {
		formatter.ID(removed.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"id":             removed.ID,
			"title":          removed.Title,
			"discardedItems": removed.ItemCount,
			"columns":        len(out.Board.Columns),
		})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Column '%s' removed (%d items discarded)\n", removed.Title, removed.ItemCount)
	return nil
}
