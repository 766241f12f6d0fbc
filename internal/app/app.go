package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/database"
	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/seed"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	Config *config.Config
	Logger *slog.Logger

	// Now is the application clock
	Now func() time.Time

	// Service layer
	BoardService boardservice.Service
}

// New opens the board database named by cfg and wires every service.
// The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	a := &App{
		Config: cfg,
		Logger: options.logger,
		Now:    options.now,
	}

	repo := options.repo
	if repo == nil {
		db, err := database.InitDB(ctx, cfg.Board.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open board database: %w", err)
		}
		a.db = db
		repo = database.NewBoardRepo(db)
	}

	seedFn := options.seed
	if seedFn == nil {
		seedFn = seedFromConfig(cfg)
	}

	engineOpts := []board.Option{board.WithClock(options.now)}
	if options.newID != nil {
		engineOpts = append(engineOpts, board.WithIDSource(options.newID))
	}

	a.BoardService = boardservice.NewService(repo, board.NewEngine(engineOpts...), seedFn, options.logger)
	return a, nil
}

// seedFromConfig uses the configured seed file, or the built-in sample board
func seedFromConfig(cfg *config.Config) boardservice.SeedFunc {
	if cfg.Board.SeedFile != "" {
		path := cfg.Board.SeedFile
		return func() (models.Board, error) {
			return seed.Load(path)
		}
	}
	return seed.SampleBoard
}

// Close releases the board database
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
