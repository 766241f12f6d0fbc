package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/plano/internal/config/colors"
)

// Environment variables that override the config file
const (
	EnvThemeFile     = "PLANO_THEME_FILE"
	EnvDatabasePath  = "PLANO_DB"
	EnvSeedFile      = "PLANO_SEED_FILE"
	EnvLogLevel      = "PLANO_LOG_LEVEL"
	EnvDeadlineCount = "PLANO_DEADLINES"
)

// ColorScheme is the configurable TUI palette
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	Board       BoardSettings `yaml:"board"`
	LogLevel    string        `yaml:"log_level"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// BoardSettings controls where the board lives and how it is presented
type BoardSettings struct {
	// DatabasePath is the SQLite snapshot file; empty means ~/.plano/board.db
	DatabasePath string `yaml:"database_path"`

	// SeedFile replaces the built-in sample board on first run or reset
	SeedFile string `yaml:"seed_file"`

	// DeadlineCount is how many upcoming deadlines are listed
	DeadlineCount int `yaml:"deadline_count"`

	// DefaultView is the TUI view shown on start (board, calendar, table, feed, analytics)
	DefaultView string `yaml:"default_view"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	loadDotEnv()

	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults when it is missing
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	loadThemeFile(&cfg)
	applyEnv(&cfg)
	cfg.applyDefaults()
	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// SlogLevel converts LogLevel into a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// loadDotEnv reads an optional .env file from the working directory
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}
}

// loadThemeFile merges the theme from PLANO_THEME_FILE when it is set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	cfg.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv lets PLANO_* variables override file values
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.Board.DatabasePath = v
	}
	if v := os.Getenv(EnvSeedFile); v != "" {
		cfg.Board.SeedFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvDeadlineCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Board.DeadlineCount = n
		}
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "plano", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "plano", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Board.DeadlineCount <= 0 {
		c.Board.DeadlineCount = 5
	}
	c.Board.DefaultView = strings.ToLower(c.Board.DefaultView)
	if c.Board.DefaultView == "" {
		c.Board.DefaultView = "board"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
