package schedule

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/cli/styles"
)

// MonthCmd returns the calendar month subcommand
func MonthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month's schedule day by day",
		Long: `Show every day of a month that has scheduled items.

Examples:
  plano calendar month
  plano calendar month --month=2024-01 --status=approved
  plano calendar month --month=2024-01 --json
`,
		RunE: runMonth,
	}

	cmd.Flags().String("month", "", "Month to show (YYYY-MM, default current month)")
	handler.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// dayView is one day of the month listing
type dayView struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	calendar.DayBucket
}

func runMonth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	raw, _ := parser.ParseStringOptional("month")
	month, err := cli.ParseMonth(raw, cliInstance.App.Now())
	if err != nil {
		return formatter.Fail(err, "Use the YYYY-MM format, e.g. --month=2024-01")
	}

	items, err := filteredItems(ctx, cliInstance, parser)
	if err != nil {
		return formatter.Fail(err, "")
	}

	buckets := calendar.BucketByDay(calendar.BucketByMonth(items, month))
	days := make([]dayView, len(buckets))
	total := 0
	for i, bucket := range buckets {
		days[i] = dayView{Date: bucket.Key, Count: len(bucket.Items), DayBucket: bucket}
		total += len(bucket.Items)
	}
	label := calendar.MonthStart(month).Format("January 2006")

	if formatter.Quiet {
		for _, d := range days {
			for _, it := range d.Items {
				formatter.ID(it.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"month": label,
			"total": total,
			"days":  days,
		})
	}

	w := formatter.Writer()
	fmt.Fprintf(w, "%s %s\n", styles.TitleStyle.Render(label), styles.SubtitleStyle.Render(fmt.Sprintf("(%d items)", total)))
	for _, d := range days {
		fmt.Fprintf(w, "\n%s\n", styles.LabelStyle.Render(d.DayBucket.Date.Format("Mon 02")))
		for _, it := range d.Items {
			when := it.ScheduledTime
			if when == "" {
				when = calendar.NoTimeKey
			}
			fmt.Fprintf(w, "  • %s %s  %s  %s\n",
				styles.SubtitleStyle.Render(it.ID),
				it.Title,
				styles.SubtitleStyle.Render(when),
				styles.RenderPlatforms(it.Platforms))
		}
	}
	return nil
}
