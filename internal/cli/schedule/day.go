package schedule

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/cli/styles"
)

// DayCmd returns the calendar day subcommand
func DayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's schedule grouped by time",
		Long: `Show the items scheduled on one day, grouped by scheduled time.

Examples:
  plano calendar day
  plano calendar day --date=2024-01-05 --platform=instagram
  plano calendar day --date=2024-01-05 --json
`,
		RunE: runDay,
	}

	cmd.Flags().String("date", "", "Day to show (YYYY-MM-DD, default today)")
	handler.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	raw, _ := parser.ParseStringOptional("date")
	day, err := cli.ParseDay(raw, cliInstance.App.Now())
	if err != nil {
		return formatter.Fail(err, "Use the YYYY-MM-DD format, e.g. --date=2024-01-15")
	}

	items, err := filteredItems(ctx, cliInstance, parser)
	if err != nil {
		return formatter.Fail(err, "")
	}
	slots := calendar.TimeSlots(calendar.ItemsOnDay(items, day))

	if formatter.Quiet {
		for _, slot := range slots {
			for _, it := range slot.Items {
				formatter.ID(it.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"date":  calendar.DayKey(day),
			"slots": slots,
		})
	}

	w := formatter.Writer()
	fmt.Fprintln(w, styles.TitleStyle.Render(day.Format("Monday, January 2 2006")))
	if len(slots) == 0 {
		fmt.Fprintln(w, styles.SubtitleStyle.Render("  Nothing scheduled"))
		return nil
	}
	for _, slot := range slots {
		fmt.Fprintf(w, "\n%s\n", styles.LabelStyle.Render(slot.Time))
		for _, it := range slot.Items {
			fmt.Fprintf(w, "  • %s %s  %s\n",
				styles.SubtitleStyle.Render(it.ID),
				it.Title,
				styles.RenderPlatforms(it.Platforms))
		}
	}
	return nil
}
