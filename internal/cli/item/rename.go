package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// RenameCmd returns the item rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change an item's title",
		Long: `Change the title of an item.

Examples:
  plano item rename --item=new-1 --title="Holiday Giveaway"
`,
		RunE: runRename,
	}

	addItemFlag(cmd)
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

	itemID, err := parser.ParseString("item")
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

	out, err := cliInstance.App.BoardService.RenameItem(ctx, itemID, title)
	if err := cli.CheckOutcome(formatter, out, err, "List items with: plano item list"); err != nil {
		return err
	}

	view, _ := viewOf(out.Board, itemID)

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Item '%s' renamed to '%s'\n", view.ID, view.Title)
	return nil
}
