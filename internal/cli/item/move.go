package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/models"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
)

// MoveCmd returns the item move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move an item to another column or position",
		Long: `Move an item within its column or into another column.

Without --at the item goes to the bottom of the target column. With --at it is
inserted at that zero-based position; within the same column the position is
counted after the item is taken out. Moving into a status column updates the
item's status.

Examples:
  # Move to the bottom of review-ready
  plano item move --item=cal-2 --to=review-ready

  # Move to the top of approved
  plano item move --item=cal-2 --to=approved --at=0

  # Reorder inside the same column
  plano item move --item=3 --to=idea --at=0 --json
`,
		RunE: runMove,
	}

	addItemFlag(cmd)
	cmd.Flags().String("to", "", "Destination column ID (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}
	cmd.Flags().Int("at", 0, "Zero-based destination position (default: bottom)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	itemID, err := parser.ParseString("item")
	if err != nil {
		return formatter.Fail(err, "")
	}
	to, err := parser.ParseString("to")
	if err != nil {
		return formatter.Fail(err, "")
	}
	at, hasPosition, err := parser.ParseIndex("at")
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()
	svc := cliInstance.App.BoardService

	var out boardservice.Outcome
	if hasPosition {
		b, err := svc.Board(ctx)
		if err != nil {
			return formatter.Fail(err, "")
		}
		ci, ii, ok := b.FindItem(itemID)
		if !ok {
			return formatter.Fail(fmt.Errorf("item %q: %w", itemID, models.ErrItemNotFound), "List items with: plano item list")
		}
		out, err = svc.MoveItem(ctx, board.MoveRequest{
			Source:      board.Location{ColumnID: b.Columns[ci].ID, Index: ii},
			Destination: &board.Location{ColumnID: to, Index: at},
		})
		if err := cli.CheckOutcome(formatter, out, err, ""); err != nil {
			return err
		}
	} else {
		out, err = svc.MoveToColumn(ctx, itemID, to)
		if err := cli.CheckOutcome(formatter, out, err, "List columns with: plano column list"); err != nil {
			return err
		}
	}

	view, _ := viewOf(out.Board, itemID)
	col, _ := out.Board.Column(view.Column)
	position := 0
	for i, it := range col.Items {
		if it.ID == itemID {
			position = i
		}
	}

	if formatter.Quiet {
		formatter.ID(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"item":     view,
			"position": position,
		})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Moved '%s' to '%s' at position %d (status: %s)\n", view.Title, col.Title, position, view.Status)
	return nil
}
