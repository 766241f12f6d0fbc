package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty temp dir.
// Tests calling it cannot run in parallel because they modify the environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvDatabasePath, "")
	t.Setenv(EnvSeedFile, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDeadlineCount, "")
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "plano")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	t.Parallel()

	defaults := DefaultKeyMappings()
	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddCard)
	assert.Equal(t, "enter", defaults.ViewCard)
	assert.Equal(t, "<", defaults.RescheduleEarlier)
	assert.Equal(t, ">", defaults.RescheduleLater)
	for _, binding := range defaults.bindings() {
		assert.NotEmpty(t, *binding)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, 5, cfg.Board.DeadlineCount)
	assert.Equal(t, "board", cfg.Board.DefaultView)
	assert.Empty(t, cfg.Board.DatabasePath)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
log_level: debug
board:
  database_path: /tmp/custom.db
  deadline_count: 8
  default_view: Calendar
key_mappings:
  quit: "x"
  add_card: "o"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "o", cfg.KeyMappings.AddCard)
	assert.Equal(t, "j", cfg.KeyMappings.NextCard)
	assert.Equal(t, "/tmp/custom.db", cfg.Board.DatabasePath)
	assert.Equal(t, 8, cfg.Board.DeadlineCount)
	assert.Equal(t, "calendar", cfg.Board.DefaultView)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "board: [unclosed")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "board:\n  database_path: /from/file.db\n")
	t.Setenv(EnvDatabasePath, "/from/env.db")
	t.Setenv(EnvDeadlineCount, "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Board.DatabasePath)
	assert.Equal(t, 3, cfg.Board.DeadlineCount)
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	// godotenv never overrides variables that are already set, so clear it
	require.NoError(t, os.Unsetenv(EnvSeedFile))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLANO_SEED_FILE=/seeds/team.yaml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(EnvSeedFile) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/seeds/team.yaml", cfg.Board.SeedFile)
}

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  status_idea: "#0000FF"
`), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.StatusIdea)
	assert.NotEmpty(t, cfg.ColorScheme.Delete)
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "chatty"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}
