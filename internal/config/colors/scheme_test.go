package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_UsesPresetAsBase(t *testing.T) {
	t.Parallel()

	c := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	c.ApplyDefaults()

	assert.Equal(t, "#123456", c.Accent)
	assert.Equal(t, Monochrome().StatusApproved, c.StatusApproved)
	for _, field := range c.fields() {
		assert.NotEmpty(t, *field)
	}
}

func TestApplyDefaults_UnknownPresetFallsBackToDefault(t *testing.T) {
	t.Parallel()

	c := ColorScheme{Preset: "neon"}
	c.ApplyDefaults()
	assert.Equal(t, Default().Accent, c.Accent)

	var empty ColorScheme
	empty.ApplyDefaults()
	assert.Equal(t, "default", empty.Preset)
}

func TestMergeFrom(t *testing.T) {
	t.Parallel()

	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#FF0000", Critical: "#00FF00"})

	assert.Equal(t, "#FF0000", c.Accent)
	assert.Equal(t, "#00FF00", c.Critical)
	assert.Equal(t, Default().Edit, c.Edit)
	assert.Equal(t, "default", c.Preset)
}
