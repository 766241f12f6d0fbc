// Package launcher starts the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/tui"
)

// Launch opens the board and runs the TUI until it quits or the process is
// interrupted. An App carried by ctx is reused instead of opening the
// user's board.
func Launch(ctx context.Context, opts ...tea.ProgramOption) error {
	// Cancel on interrupt so the model and store shut down cleanly
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	model := tui.New(ctx, cliInstance.App)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		p.Kill()
		<-errChan
	}

	return nil
}
