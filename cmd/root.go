// Package cmd wires the plano command tree
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/cli/board"
	"github.com/thenoetrevino/plano/internal/cli/column"
	"github.com/thenoetrevino/plano/internal/cli/guide"
	"github.com/thenoetrevino/plano/internal/cli/item"
	"github.com/thenoetrevino/plano/internal/cli/schedule"
	"github.com/thenoetrevino/plano/internal/cli/styles"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/launcher"
)

// NewRootCmd builds the plano command tree. Run without a subcommand it
// opens the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plano",
		Short: "Plano - A terminal content planning board",
		Long: `Plano is a terminal board for planning social media content.

Items move through idea, in-progress, review-ready and approved columns and
carry a schedule, target platforms and an assignee. Run plano with no
arguments for the interactive board, or use the subcommands for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initStyles(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.Launch(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return &cli.ExitError{Code: cli.ExitFailure, Err: err}
			}
			return nil
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(board.ResetCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(schedule.CalendarCmd())
	rootCmd.AddCommand(schedule.DeadlinesCmd())
	rootCmd.AddCommand(guide.GuideCmd())

	return rootCmd
}

// initStyles colors human output written to a terminal
func initStyles(cmd *cobra.Command) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return
	}
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)
}

// Execute runs the root command. Commands report their own failures as an
// *cli.ExitError; anything else came from cobra's argument and flag checks
// and is reported here as a usage error.
func Execute() error {
	rootCmd := NewRootCmd()
	return usageError(rootCmd, rootCmd.Execute())
}

func usageError(rootCmd *cobra.Command, err error) error {
	var exitErr *cli.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return err
	}
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	fmt.Fprintln(rootCmd.ErrOrStderr(), "Run 'plano --help' for usage.")
	return &cli.ExitError{Code: cli.ExitUsage, Err: err}
}
