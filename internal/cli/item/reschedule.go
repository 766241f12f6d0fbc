package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
)

// RescheduleCmd returns the item reschedule subcommand
func RescheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reschedule",
		Short: "Move an item to another calendar day",
		Long: `Change the scheduled date of an item, or clear it with --clear.

Examples:
  plano item reschedule --item=cal-4 --date=2024-01-25
  plano item reschedule --item=cal-4 --clear --json
`,
		RunE: runReschedule,
	}

	addItemFlag(cmd)
	cmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear", false, "Unschedule the item")
	cmd.MarkFlagsMutuallyExclusive("date", "clear")
	cmd.MarkFlagsOneRequired("date", "clear")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runReschedule(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	itemID, err := parser.ParseString("item")
	if err != nil {
		return formatter.Fail(err, "")
	}
	date, err := parser.ParseStringOptional("date")
	if err != nil {
		return formatter.Fail(err, "")
	}
	if unschedule, _ := cmd.Flags().GetBool("clear"); unschedule {
		date = ""
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	out, err := cliInstance.App.BoardService.RescheduleItem(ctx, itemID, date)
	if err := cli.CheckOutcome(formatter, out, err, "Use the YYYY-MM-DD format, e.g. --date=2024-01-15"); err != nil {
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

	if view.ScheduledDate == "" {
		fmt.Fprintf(formatter.Writer(), "✓ Item '%s' unscheduled\n", view.ID)
		return nil
	}
	fmt.Fprintf(formatter.Writer(), "✓ Item '%s' rescheduled to %s\n", view.ID, view.ScheduledDate)
	return nil
}
