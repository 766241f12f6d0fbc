package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the board and reload the sample board",
		Long: `Discard every change and reload the seed board: the configured seed file,
or the built-in sample board. Requires --force.

Examples:
  plano reset --force
  plano reset --force --json
`,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Confirm discarding the current board")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if force, _ := cmd.Flags().GetBool("force"); !force {
		return formatter.FailWith("CONFIRMATION_REQUIRED", cli.ExitUsage,
			fmt.Errorf("%w: reset discards the current board", cli.ErrUsage),
			"Run again with --force")
	}

	cliInstance, done, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer done()

	b, err := cliInstance.App.BoardService.Reset(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	summary := map[string]any{
		"columns": len(b.Columns),
		"items":   b.ItemCount(),
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer(), "✓ Board reset (%d columns, %d items)\n", len(b.Columns), b.ItemCount())
	return nil
}
