package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/plano/internal/database"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
	"github.com/thenoetrevino/plano/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	now    func() time.Time
	newID  types.IDSource
	seed   boardservice.SeedFunc
	repo   database.BoardRepository
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock used for "today", new-card dates and deadlines
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithIDSource sets the generator for new item and section ids
func WithIDSource(src types.IDSource) Option {
	return func(cfg *appConfig) {
		cfg.newID = src
	}
}

// WithSeed sets the board used when the store is empty
func WithSeed(seed boardservice.SeedFunc) Option {
	return func(cfg *appConfig) {
		cfg.seed = seed
	}
}

// WithRepository replaces the SQLite-backed board repository
func WithRepository(repo database.BoardRepository) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}
