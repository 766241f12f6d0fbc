// Package board is the board service: the boundary between user-facing
// surfaces and the pure board engine.
//
// The service owns the working board. Each mutation loads the current board,
// applies one engine operation and persists the replacement. Invalid
// references are logged and swallowed so a stale drag or keypress can never
// break a surface; the Outcome tells callers that want to know (the CLI)
// whether anything changed and why not.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/plano/internal/board"
	"github.com/thenoetrevino/plano/internal/database"
	"github.com/thenoetrevino/plano/internal/models"
)

// Service defines all board operations available to the CLI and TUI
type Service interface {
	// Read operations
	Board(ctx context.Context) (models.Board, error)
	Items(ctx context.Context) ([]models.ContentItem, error)
	Item(ctx context.Context, itemID string) (models.ContentItem, string, error)

	// Item write operations
	MoveItem(ctx context.Context, req board.MoveRequest) (Outcome, error)
	MoveToColumn(ctx context.Context, itemID, columnID string) (Outcome, error)
	AddItem(ctx context.Context, columnID string) (Outcome, error)
	CreateContent(ctx context.Context, data models.CreateContentData) (Outcome, error)
	UpdateItem(ctx context.Context, item models.ContentItem) (Outcome, error)
	RenameItem(ctx context.Context, itemID, title string) (Outcome, error)
	RescheduleItem(ctx context.Context, itemID, date string) (Outcome, error)

	// Column write operations
	RenameColumn(ctx context.Context, columnID, title string) (Outcome, error)
	AddColumn(ctx context.Context, anchorID string, side board.Side) (Outcome, error)
	RemoveColumn(ctx context.Context, columnID string) (Outcome, error)

	// Reset discards the working board and reloads the seed board
	Reset(ctx context.Context) (models.Board, error)
}

// Outcome reports the board after a mutation and whether it changed
type Outcome struct {
	Board models.Board

	// Applied is true when the operation produced a new board
	Applied bool

	// Cancelled is true for a drag dropped outside any column
	Cancelled bool

	// Reason explains why an operation was ignored
	Reason error

	// ItemID and ColumnID name the item or column the operation produced
	ItemID   string
	ColumnID string
}

// Item returns the item named by ItemID in the resulting board
func (o Outcome) Item() (models.ContentItem, bool) {
	ci, ii, ok := o.Board.FindItem(o.ItemID)
	if !ok {
		return models.ContentItem{}, false
	}
	return o.Board.Columns[ci].Items[ii], true
}

// SeedFunc produces the board used when no snapshot exists
type SeedFunc func() (models.Board, error)

// service implements Service over a snapshot repository
type service struct {
	mu      sync.Mutex
	repo    database.BoardRepository
	engine  *board.Engine
	seed    SeedFunc
	logger  *slog.Logger
	current *models.Board
}

// NewService creates a new board service
func NewService(repo database.BoardRepository, engine *board.Engine, seed SeedFunc, logger *slog.Logger) Service {
	if engine == nil {
		engine = board.NewEngine()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if seed == nil {
		seed = func() (models.Board, error) {
			return models.Board{Columns: models.DefaultColumns()}, nil
		}
	}
	return &service{
		repo:   repo,
		engine: engine,
		seed:   seed,
		logger: logger,
	}
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// Board returns the working board
func (s *service) Board(ctx context.Context) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Items returns every item in board order
func (s *service) Items(ctx context.Context) ([]models.ContentItem, error) {
	b, err := s.Board(ctx)
	if err != nil {
		return nil, err
	}
	return b.Items(), nil
}

// Item returns an item and the id of the column holding it
func (s *service) Item(ctx context.Context, itemID string) (models.ContentItem, string, error) {
	b, err := s.Board(ctx)
	if err != nil {
		return models.ContentItem{}, "", err
	}
	ci, ii, ok := b.FindItem(itemID)
	if !ok {
		return models.ContentItem{}, "", fmt.Errorf("item %q: %w", itemID, models.ErrItemNotFound)
	}
	return b.Columns[ci].Items[ii], b.Columns[ci].ID, nil
}

// load returns the cached board, reading or seeding the snapshot on first use.
// Callers must hold s.mu.
func (s *service) load(ctx context.Context) (models.Board, error) {
	if s.current != nil {
		return *s.current, nil
	}

	b, err := s.repo.LoadBoard(ctx)
	if errors.Is(err, database.ErrNoSnapshot) {
		if b, err = s.seed(); err != nil {
			return models.Board{}, fmt.Errorf("failed to seed board: %w", err)
		}
		if err := s.repo.SaveBoard(ctx, b); err != nil {
			return models.Board{}, fmt.Errorf("failed to save seed board: %w", err)
		}
		s.logger.Info("seeded new board", "columns", len(b.Columns), "items", b.ItemCount())
	} else if err != nil {
		return models.Board{}, fmt.Errorf("failed to load board: %w", err)
	}

	if err := board.Validate(b); err != nil {
		return models.Board{}, fmt.Errorf("stored board is invalid: %w", err)
	}

	s.current = &b
	return b, nil
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// apply runs one engine operation under the lock. Engine errors leave the
// board unchanged and are logged rather than returned.
func (s *service) apply(ctx context.Context, op string, fn func(models.Board) (models.Board, error), attrs ...any) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.load(ctx)
	if err != nil {
		return Outcome{}, err
	}

	next, opErr := fn(cur)
	if opErr != nil {
		s.logger.Warn("ignored invalid board operation", append([]any{"op", op, "reason", opErr}, attrs...)...)
		return Outcome{Board: cur, Reason: opErr}, nil
	}

	if err := s.repo.SaveBoard(ctx, next); err != nil {
		return Outcome{Board: cur}, fmt.Errorf("failed to save board after %s: %w", op, err)
	}
	s.current = &next

	s.logger.Debug("applied board operation", append([]any{"op", op}, attrs...)...)
	return Outcome{Board: next, Applied: true}, nil
}

// MoveItem applies a finished drag
func (s *service) MoveItem(ctx context.Context, req board.MoveRequest) (Outcome, error) {
	if req.Destination == nil {
		s.logger.Debug("drag cancelled", "column", req.Source.ColumnID, "index", req.Source.Index)
		b, err := s.Board(ctx)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Board: b, Cancelled: true}, nil
	}

	var itemID string
	out, err := s.apply(ctx, "move item", func(b models.Board) (models.Board, error) {
		if col, ok := b.Column(req.Source.ColumnID); ok && req.Source.Index >= 0 && req.Source.Index < len(col.Items) {
			itemID = col.Items[req.Source.Index].ID
		}
		return s.engine.MoveItem(b, req)
	},
		"from", req.Source.ColumnID, "from_index", req.Source.Index,
		"to", req.Destination.ColumnID, "to_index", req.Destination.Index,
	)
	out.ItemID = itemID
	out.ColumnID = req.Destination.ColumnID
	return out, err
}

// MoveToColumn moves an item to the bottom of another column
func (s *service) MoveToColumn(ctx context.Context, itemID, columnID string) (Outcome, error) {
	out, err := s.apply(ctx, "move item to column", func(b models.Board) (models.Board, error) {
		return s.engine.MoveToColumn(b, itemID, columnID)
	}, "item", itemID, "to", columnID)
	out.ItemID = itemID
	out.ColumnID = columnID
	return out, err
}

// AddItem appends a placeholder card to a column
func (s *service) AddItem(ctx context.Context, columnID string) (Outcome, error) {
	var added models.ContentItem
	out, err := s.apply(ctx, "add item", func(b models.Board) (models.Board, error) {
		next, item, err := s.engine.AddItem(b, columnID, nil)
		added = item
		return next, err
	}, "column", columnID)
	out.ItemID = added.ID
	out.ColumnID = columnID
	return out, err
}

// CreateContent adds a new item from the create-content form to the idea column
func (s *service) CreateContent(ctx context.Context, data models.CreateContentData) (Outcome, error) {
	data.Title = strings.TrimSpace(data.Title)
	if err := validateTitle(data.Title); err != nil {
		return Outcome{}, err
	}
	if len(data.Platforms) == 0 {
		return Outcome{}, ErrNoPlatforms
	}

	var created models.ContentItem
	out, err := s.apply(ctx, "create content", func(b models.Board) (models.Board, error) {
		next, item, err := s.engine.CreateContent(b, data)
		created = item
		return next, err
	}, "title", data.Title)
	out.ItemID = created.ID
	out.ColumnID = models.IdeaColumnID
	return out, err
}

// UpdateItem replaces an item in place
func (s *service) UpdateItem(ctx context.Context, item models.ContentItem) (Outcome, error) {
	item.Title = strings.TrimSpace(item.Title)
	if err := validateTitle(item.Title); err != nil {
		return Outcome{}, err
	}

	out, err := s.apply(ctx, "update item", func(b models.Board) (models.Board, error) {
		return s.engine.UpdateItem(b, item)
	}, "item", item.ID)
	out.ItemID = item.ID
	return out, err
}

// RenameItem changes an item's title
func (s *service) RenameItem(ctx context.Context, itemID, title string) (Outcome, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return Outcome{}, err
	}

	out, err := s.apply(ctx, "rename item", func(b models.Board) (models.Board, error) {
		return s.engine.RenameItem(b, itemID, title)
	}, "item", itemID)
	out.ItemID = itemID
	return out, err
}

// RescheduleItem moves an item to another calendar day
func (s *service) RescheduleItem(ctx context.Context, itemID, date string) (Outcome, error) {
	out, err := s.apply(ctx, "reschedule item", func(b models.Board) (models.Board, error) {
		return s.engine.RescheduleItem(b, itemID, date)
	}, "item", itemID, "date", date)
	out.ItemID = itemID
	return out, err
}

// RenameColumn changes a column title
func (s *service) RenameColumn(ctx context.Context, columnID, title string) (Outcome, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return Outcome{}, err
	}

	out, err := s.apply(ctx, "rename column", func(b models.Board) (models.Board, error) {
		return s.engine.RenameColumn(b, columnID, title)
	}, "column", columnID)
	out.ColumnID = columnID
	return out, err
}

// AddColumn inserts a new section next to the anchor column
func (s *service) AddColumn(ctx context.Context, anchorID string, side board.Side) (Outcome, error) {
	var added models.Column
	out, err := s.apply(ctx, "add column", func(b models.Board) (models.Board, error) {
		next, col, err := s.engine.AddColumn(b, anchorID, side)
		added = col
		return next, err
	}, "anchor", anchorID, "side", string(side))
	out.ColumnID = added.ID
	return out, err
}

// RemoveColumn deletes a column and the items it holds
func (s *service) RemoveColumn(ctx context.Context, columnID string) (Outcome, error) {
	out, err := s.apply(ctx, "remove column", func(b models.Board) (models.Board, error) {
		return s.engine.RemoveColumn(b, columnID)
	}, "column", columnID)
	out.ColumnID = columnID
	return out, err
}

// Reset replaces the working board with a fresh seed board
func (s *service) Reset(ctx context.Context) (models.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearBoard(ctx); err != nil {
		return models.Board{}, fmt.Errorf("failed to clear board: %w", err)
	}
	s.current = nil
	return s.load(ctx)
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
