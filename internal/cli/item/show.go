package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an item with its rendered description",
		Long: `Show every field of an item. The description is rendered as markdown.

Examples:
  plano item show --item=cal-1
  plano item show --item=cal-1 --json
`,
		RunE: runShow,
	}

	addItemFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	itemID, err := parser.ParseString("item")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	item, columnID, err := cliInstance.App.BoardService.Item(ctx, itemID)
	if err != nil {
		return formatter.Fail(err, "List items with: plano item list")
	}
	view := itemView{ContentItem: item, Column: columnID}

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(view)
	}

	printItemCard(formatter.Writer(), view)
	return nil
}
