package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a column",
		Long: `Change the display title of a column. The column ID and its items are unchanged.

Examples:
  plano column rename --column=section-1f0c --title="Evergreen"
  plano column rename --column=idea --title="Backlog" --json
`,
		RunE: runRename,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}
	cmd.Flags().String("title", "", "New title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	columnID, err := parser.ParseString("column")
	if err != nil {
		return formatter.Fail(err, "")
	}
	title, err := parser.ParseStringOptional("title")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	out, err := cliInstance.App.BoardService.RenameColumn(ctx, columnID, title)
	if err := cli.CheckOutcome(formatter, out, err, "List columns with: plano column list"); err != nil {
		return err
	}

	summary, _ := summarize(out.Board, columnID)

	if formatter.Quiet {
		formatter.ID(summary.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Column '%s' renamed to '%s'\n", summary.ID, summary.Title)
	return nil
}
