package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/plano/internal/models"
)

// Location addresses a slot in a column
type Location struct {
	ColumnID string
	Index    int
}

// MoveRequest describes a finished drag. A nil Destination means the drag was
// dropped outside any column.
type MoveRequest struct {
	Source      Location
	Destination *Location
}

// MoveItem removes the item at the source slot and inserts it at the
// destination slot. Moving across columns sets the item's status when the
// destination column maps to a canonical status.
//
// The source index must address an existing item. The destination index may
// be anything from 0 to the destination length, measured after the item has
// been removed when source and destination are the same column.
func (e *Engine) MoveItem(b models.Board, req MoveRequest) (models.Board, error) {
	if req.Destination == nil {
		return b, nil
	}
	dest := *req.Destination

	srcIdx := b.ColumnIndex(req.Source.ColumnID)
	if srcIdx < 0 {
		return b, fmt.Errorf("move: source column %q: %w", req.Source.ColumnID, models.ErrColumnNotFound)
	}
	dstIdx := b.ColumnIndex(dest.ColumnID)
	if dstIdx < 0 {
		return b, fmt.Errorf("move: destination column %q: %w", dest.ColumnID, models.ErrColumnNotFound)
	}

	srcItems := b.Columns[srcIdx].Items
	if req.Source.Index < 0 || req.Source.Index >= len(srcItems) {
		return b, fmt.Errorf("move: source index %d of %d: %w", req.Source.Index, len(srcItems), models.ErrIndexOutOfRange)
	}

	destLen := len(b.Columns[dstIdx].Items)
	if srcIdx == dstIdx {
		destLen--
	}
	if dest.Index < 0 || dest.Index > destLen {
		return b, fmt.Errorf("move: destination index %d of %d: %w", dest.Index, destLen, models.ErrIndexOutOfRange)
	}

	next := shallowCopy(b)
	moved := srcItems[req.Source.Index]
	remaining := slices.Delete(slices.Clone(srcItems), req.Source.Index, req.Source.Index+1)

	if srcIdx == dstIdx {
		next.Columns[srcIdx].Items = slices.Insert(remaining, dest.Index, moved)
		return next, nil
	}

	if status, ok := models.StatusForColumn(dest.ColumnID); ok {
		moved.Status = status
	}
	next.Columns[srcIdx].Items = remaining
	next.Columns[dstIdx].Items = slices.Insert(slices.Clone(b.Columns[dstIdx].Items), dest.Index, moved)
	return next, nil
}

// MoveToColumn moves an item to the end of another column, keeping the board
// order of everything else. Used by keyboard-driven surfaces that address
// items by id rather than by drag slots.
func (e *Engine) MoveToColumn(b models.Board, itemID, columnID string) (models.Board, error) {
	ci, ii, ok := b.FindItem(itemID)
	if !ok {
		return b, fmt.Errorf("move: item %q: %w", itemID, models.ErrItemNotFound)
	}
	dstIdx := b.ColumnIndex(columnID)
	if dstIdx < 0 {
		return b, fmt.Errorf("move: destination column %q: %w", columnID, models.ErrColumnNotFound)
	}

	destIndex := len(b.Columns[dstIdx].Items)
	if dstIdx == ci {
		destIndex--
	}
	return e.MoveItem(b, MoveRequest{
		Source:      Location{ColumnID: b.Columns[ci].ID, Index: ii},
		Destination: &Location{ColumnID: columnID, Index: destIndex},
	})
}

// shallowCopy copies the column slice so individual columns can be replaced
// without touching the caller's board
func shallowCopy(b models.Board) models.Board {
	return models.Board{Columns: slices.Clone(b.Columns)}
}
