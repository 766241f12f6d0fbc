package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plano/internal/cli"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := usageError(rootCmd, rootCmd.Execute())
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	for _, name := range []string{"board", "reset", "column", "item", "calendar", "deadlines", "guide"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRoot_Guide(t *testing.T) {
	out, _, err := execute(t, "guide", "--raw")

	require.NoError(t, err)
	assert.Contains(t, out, "# plano")
}

func TestRoot_UnknownFlagIsUsageError(t *testing.T) {
	_, stderr, err := execute(t, "guide", "--bogus")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.ErrorIs(t, err, cli.ErrUsage)
	assert.Contains(t, stderr, "plano --help")
}

func TestRoot_UnknownCommandIsUsageError(t *testing.T) {
	_, _, err := execute(t, "frobnicate")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRoot_MissingRequiredFlagIsUsageError(t *testing.T) {
	_, stderr, err := execute(t, "item", "show")

	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, stderr, "item")
}
