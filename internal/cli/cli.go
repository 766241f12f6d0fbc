package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected by the caller
	owned     bool
	logCloser io.Closer
}

// NewCLI loads the configuration, starts file logging and opens the board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Logging is best effort for one-shot commands
	logger := logging.Discard()
	logCloser, err := logging.Init(cfg.SlogLevel())
	if err == nil {
		logger = logging.Logger
	}

	application, err := app.New(ctx, cfg, app.WithLogger(logger))
	if err != nil {
		if logCloser != nil {
			_ = logCloser.Close()
		}
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:       application,
		owned:     true,
		logCloser: logCloser,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); closeErr != nil {
			slog.Debug("failed to close log file", "error", closeErr)
		}
	}
	return err
}

// Open returns the CLI for cmd and a cleanup func. Failures are reported
// through f and come back as an *ExitError.
func Open(cmd *cobra.Command, f *OutputFormatter) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, f.FailWith("INITIALIZATION_ERROR", ExitFailure, err, "")
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}, nil
}
