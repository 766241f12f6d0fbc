package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a placeholder card to a column",
		Long: `Append an "Untitled" card scheduled for today to the bottom of a column.
Cards added to a status column take that column's status.

Examples:
  plano item add --column=idea
  ITEM=$(plano item add --column=in-progress --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	out, err := cliInstance.App.BoardService.AddItem(ctx, columnID)
	if err := cli.CheckOutcome(formatter, out, err, "List columns with: plano column list"); err != nil {
		return err
	}

	view, _ := viewOf(out.Board, out.ItemID)

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Card '%s' added to '%s' (ID: %s)\n", view.Title, view.Column, view.ID)
	return nil
}
