package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/cli"
	"github.com/thenoetrevino/plano/internal/testutil"
)

// Result holds what a command wrote to each stream
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so GetCLIFromContext never
// opens the user's board.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	res, err := ExecuteCLICommandFull(t, context.Background(), testApp, cmd, args)
	return res.Stdout, err
}

// ExecuteCLICommandFull executes a CLI command and captures stdout and stderr
func ExecuteCLICommandFull(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(cli.WithApp(ctx, testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
