package schedule

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/cli/styles"
)

// maxBarWidth is the length of the longest tally bar
const maxBarWidth = 30

// StatsCmd returns the calendar stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly content statistics",
		Long: `Show how many items are scheduled in a month, per day, per platform and
per status.

Examples:
  plano calendar stats
  plano calendar stats --month=2024-01 --json
`,
		RunE: runStats,
	}

	cmd.Flags().String("month", "", "Month to summarise (YYYY-MM, default current month)")
	handler.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
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
	summary := calendar.MonthSummary(items, month)

	if formatter.Quiet {
		fmt.Fprintln(formatter.Writer(), summary.Total)
		return nil
	}

	if formatter.JSON {
		return formatter.Success(summary)
	}

	w := formatter.Writer()
	fmt.Fprintf(w, "%s %s\n", styles.TitleStyle.Render(summary.Label), styles.SubtitleStyle.Render(fmt.Sprintf("(%d items)", summary.Total)))

	fmt.Fprintln(w, styles.SectionStyle.Render("By platform"))
	platformTallies := make([]namedCount, len(summary.Platforms))
	for i, t := range summary.Platforms {
		platformTallies[i] = namedCount{name: string(t.Key), count: t.Count, color: t.Key.Color()}
	}
	printBars(w, platformTallies)

	fmt.Fprintln(w, styles.SectionStyle.Render("By status"))
	statusTallies := make([]namedCount, len(summary.Statuses))
	for i, t := range summary.Statuses {
		statusTallies[i] = namedCount{name: t.Key.Title(), count: t.Count}
	}
	printBars(w, statusTallies)

	fmt.Fprintln(w, styles.SectionStyle.Render("Busiest days"))
	busiest := 0
	for _, d := range summary.Daily {
		busiest = max(busiest, d.Count)
	}
	if busiest == 0 {
		fmt.Fprintln(w, styles.SubtitleStyle.Render("  Nothing scheduled"))
		return nil
	}
	for _, d := range summary.Daily {
		if d.Count == busiest {
			fmt.Fprintf(w, "  %s: %d\n", summary.Month.AddDate(0, 0, d.Day-1).Format("Mon 02"), d.Count)
		}
	}
	return nil
}

type namedCount struct {
	name  string
	count int
	color string
}

func printBars(w io.Writer, tallies []namedCount) {
	if len(tallies) == 0 {
		fmt.Fprintln(w, styles.SubtitleStyle.Render("  none"))
		return
	}
	top, width := 0, 0
	for _, t := range tallies {
		top = max(top, t.count)
		width = max(width, len(t.name))
	}
	for _, t := range tallies {
		bar := 0
		if top > 0 {
			bar = t.count * maxBarWidth / top
		}
		fmt.Fprintf(w, "  %-*s %s %d\n", width, t.name, styles.ColoredText(strings.Repeat("█", bar), t.color), t.count)
	}
}
