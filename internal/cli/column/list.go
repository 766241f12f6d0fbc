package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Long: `List every column of the board, left to right.

Examples:
  # Human-readable list
  plano column list

  # JSON output for scripts
  plano column list --json

  # Column IDs only
  plano column list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	b, err := cliInstance.App.BoardService.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	summaries := make([]columnSummary, len(b.Columns))
	for i := range b.Columns {
		summaries[i] = summaryAt(b, i)
	}

	if formatter.Quiet {
		for _, s := range summaries {
			formatter.ID(s.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(summaries)
	}

	w := formatter.Writer()
	fmt.Fprintf(w, "%s\n\n", styles.TitleStyle.Render(fmt.Sprintf("Columns (%d)", len(summaries))))
	for _, s := range summaries {
		fmt.Fprintf(w, "  %d. %s %s %s\n",
			s.Position+1,
			s.Title,
			styles.SubtitleStyle.Render("("+s.ID+")"),
			styles.SubtitleStyle.Render(fmt.Sprintf("%d items", s.ItemCount)))
	}
	return nil
}
