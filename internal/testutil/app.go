// Package testutil provides shared fixtures for package tests
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/plano/internal/app"
	"github.com/thenoetrevino/plano/internal/config"
	"github.com/thenoetrevino/plano/internal/database"
	"github.com/thenoetrevino/plano/internal/logging"
	"github.com/thenoetrevino/plano/internal/types"
)

// FixedNow is the clock of every test app: the sample board's review week
var FixedNow = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

// Clock returns FixedNow
func Clock() time.Time {
	return FixedNow
}

// TestConfig returns the default configuration pointed at a private
// in-memory database
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Board.DatabasePath = database.MemoryPath
	return cfg
}

// NewTestApp creates an App over a fresh in-memory board seeded with the
// sample board. New ids are "new-1", "new-2", ... and the clock is FixedNow.
func NewTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	defaults := []app.Option{
		app.WithLogger(logging.Discard()),
		app.WithClock(Clock),
		app.WithIDSource(types.Sequence("new-")),
	}

	a, err := app.New(context.Background(), TestConfig(), append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
	})
	return a
}
