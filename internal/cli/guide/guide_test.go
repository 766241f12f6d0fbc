package guide

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := GuideCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestGuide_Raw(t *testing.T) {
	out := run(t, "--raw")

	assert.Equal(t, guideContent, out)
	assert.Contains(t, out, "# plano")
}

func TestGuide_Rendered(t *testing.T) {
	out := run(t)

	assert.Contains(t, out, "plano board")
	assert.Contains(t, out, "Terminal UI")
}

func TestGuide_RejectsArgs(t *testing.T) {
	cmd := GuideCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}
