package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new section next to a column",
		Long: `Insert a new empty section to the left or right of an existing column.

The section is titled "New Section" and gets a fresh "section-" ID. Rename it
with "plano column rename".

Examples:
  # Add a section right of the idea column
  plano column add --anchor=idea

  # Add a section to the left, capturing its ID
  SECTION=$(plano column add --anchor=approved --side=left --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("anchor", "", "Column ID to insert next to (required)")
	if err := cmd.MarkFlagRequired("anchor"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}

	// Optional flags
	cmd.Flags().String("side", "right", "Which side of the anchor: left or right")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	anchor, err := parser.ParseString("anchor")
	if err != nil {
		return formatter.Fail(err, "")
	}
	side, err := parser.ParseSide("side")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	out, err := cliInstance.App.BoardService.AddColumn(ctx, anchor, side)
	if err := cli.CheckOutcome(formatter, out, err, "List columns with: plano column list"); err != nil {
		return err
	}

	summary, _ := summarize(out.Board, out.ColumnID)

	if formatter.Quiet {
		formatter.ID(summary.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Section '%s' added %s of '%s' (ID: %s)\n", summary.Title, side, anchor, summary.ID)
	return nil
}
