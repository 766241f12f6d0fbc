// Package schedule implements the "plano calendar" and "plano deadlines" commands
package schedule

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/calendar"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/handler"
	"github.com/thenoetrevino/plano/internal/models"
)

// CalendarCmd returns the calendar parent command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled content by day and month",
	}

	cmd.AddCommand(DayCmd())
	cmd.AddCommand(MonthCmd())
	cmd.AddCommand(StatsCmd())

	return cmd
}

// filteredItems returns the board's items narrowed by the filter flags
func filteredItems(ctx context.Context, cliInstance *cli.CLI, parser *handler.FlagParser) ([]models.ContentItem, error) {
	criteria, err := parser.ParseCriteria()
	if err != nil {
		return nil, err
	}
	items, err := cliInstance.App.BoardService.Items(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Filter(items, criteria), nil
}
