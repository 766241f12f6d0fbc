// Package board implements the column mutation engine.
//
// Every operation takes a Board snapshot and returns a replacement Board; the
// input is never modified. Invalid references leave the board untouched and
// are reported as one of the models sentinel errors so callers can decide how
// loudly to fail.
package board

import (
	"time"

	"github.com/thenoetrevino/plano/internal/types"
)

// Engine applies structural mutations to boards
type Engine struct {
	newID types.IDSource
	now   func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithIDSource sets the generator used for new item and section ids
func WithIDSource(src types.IDSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.newID = src
		}
	}
}

// WithClock sets the clock used for default scheduled dates
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine with random ids and the wall clock
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		newID: types.NewID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
