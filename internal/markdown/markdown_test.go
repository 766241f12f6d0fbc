package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Blank(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Render("   \n", 40, StylePlain))
}

func TestRender_KeepsText(t *testing.T) {
	t.Parallel()

	out := Render("Promote the **new** banner across channels", 80, StylePlain)
	assert.Contains(t, out, "Promote")
	assert.Contains(t, out, "banner")
}

func TestRender_Wraps(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 40)
	out := Render(long, 20, StylePlain)
	assert.Greater(t, strings.Count(out, "\n"), 3)
}

func TestRender_CachesRenderers(t *testing.T) {
	Render("a", 33, StylePlain)
	Render("b", 33, StylePlain)

	mu.Lock()
	defer mu.Unlock()
	_, ok := renderers[StylePlain+":33"]
	assert.True(t, ok)
}
