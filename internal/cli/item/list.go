package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/models"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items with optional filters and search",
		Long: `List items in board order. Filters combine with AND across flags and OR
within a flag. --search ranks results by fuzzy match on title and description.

Examples:
  plano item list
  plano item list --column=idea
  plano item list --platform=instagram --status=idea,in-progress
  plano item list --assignee="John Doe" --month=2024-01 --json
  plano item list --search=launch --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only items in this column")
	cmd.Flags().String("search", "", "Fuzzy search on title and description")
	cmd.Flags().String("month", "", "Only items scheduled in this month (YYYY-MM)")
	handler.AddFilterFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	parser := handler.NewFlagParser(cmd, formatter)

	columnID, _ := parser.ParseStringOptional("column")
	query, _ := parser.ParseStringOptional("search")
	criteria, err := parser.ParseCriteria()
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	b, err := cliInstance.App.BoardService.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	var items []models.ContentItem
	if columnID != "" {
		col, ok := b.Column(columnID)
		if !ok {
			return formatter.Fail(fmt.Errorf("column %q: %w", columnID, models.ErrColumnNotFound), "List columns with: plano column list")
		}
		items = col.Items
	} else {
		items = b.Items()
	}

	if cmd.Flags().Changed("month") {
		raw, _ := parser.ParseStringOptional("month")
		month, err := cli.ParseMonth(raw, cliInstance.App.Now())
		if err != nil {
			return formatter.Fail(err, "")
		}
		items = calendar.BucketByMonth(items, month)
	}
	items = calendar.Search(calendar.Filter(items, criteria), query)

	views := make([]itemView, 0, len(items))
	for _, it := range items {
		if v, ok := viewOf(b, it.ID); ok {
			views = append(views, v)
		}
	}

	if formatter.Quiet {
		for _, v := range views {
			formatter.ID(v.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(views)
	}

	w := formatter.Writer()
	if len(views) == 0 {
		fmt.Fprintln(w, "No items found")
		return nil
	}
	fmt.Fprintf(w, "%s\n\n", styles.TitleStyle.Render(fmt.Sprintf("Items (%d)", len(views))))
	for _, v := range views {
		printItemLine(w, v)
	}
	return nil
}
