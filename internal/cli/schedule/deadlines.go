package schedule

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/deadline"
)

// DeadlinesCmd returns the deadlines command
func DeadlinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "List the next upcoming scheduled items",
		Long: `List the soonest items scheduled today or later, ordered by date and time.

Examples:
  plano deadlines
  plano deadlines --count=10 --platform=tiktok
  plano deadlines --json
`,
		RunE: runDeadlines,
	}

	cmd.Flags().Int("count", 0, "How many deadlines to list (default from config, 5)")
	handler.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// deadlineView is the JSON shape of one deadline
type deadlineView struct {
	deadline.Deadline
	Label   string           `json:"label"`
	Urgency deadline.Urgency `json:"urgency"`
}

func (d deadlineView) GetID() string {
	return d.Item.ID
}

func runDeadlines(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	count, _ := parser.ParseIntOptional("count")
	if count < 0 {
		return formatter.Fail(fmt.Errorf("%w: --count must be positive", cli.ErrInvalidInput), "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	if count == 0 && cliInstance.App.Config != nil {
		count = cliInstance.App.Config.Board.DeadlineCount
	}

	items, err := filteredItems(ctx, cliInstance, parser)
	if err != nil {
		return formatter.Fail(err, "")
	}

	upcoming := deadline.Upcoming(items, cliInstance.App.Now(), count)
	views := make([]deadlineView, len(upcoming))
	for i, d := range upcoming {
		views[i] = deadlineView{Deadline: d, Label: d.Label(), Urgency: d.Urgency()}
	}

	if formatter.Quiet {
		for _, v := range views {
			formatter.ID(v.GetID())
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(views)
	}

	w := formatter.Writer()
	fmt.Fprintln(w, styles.TitleStyle.Render("Upcoming Deadlines"))
	if len(views) == 0 {
		fmt.Fprintln(w, styles.SubtitleStyle.Render("  Nothing scheduled"))
		return nil
	}
	for _, v := range views {
		fmt.Fprintf(w, "  %-12s %s  %s %s\n",
			styles.RenderUrgency(v.Deadline),
			v.Item.Title,
			styles.SubtitleStyle.Render(v.Item.ScheduledDate+" "+v.Item.ScheduledTime),
			styles.RenderPlatforms(v.Item.Platforms))
	}
	return nil
}
