package cli

import (
	"testing"

	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/testutil"
)

// SetupCLITest returns an App over a fresh in-memory sample board.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles with the cli package.
func SetupCLITest(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	return testutil.NewTestApp(t, opts...)
}
