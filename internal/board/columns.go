package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/plano/internal/models"
	"github.com/thenoetrevino/plano/internal/types"
)

// Side selects where a new section is inserted relative to its anchor
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide converts user input into a Side
func ParseSide(raw string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(raw))) {
	case SideLeft:
		return SideLeft, nil
	case SideRight:
		return SideRight, nil
	}
	return "", fmt.Errorf("invalid side %q (must be: left, right)", raw)
}

// RenameColumn replaces the display title of a column
func (e *Engine) RenameColumn(b models.Board, columnID, title string) (models.Board, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return b, fmt.Errorf("rename column %q: %w", columnID, models.ErrColumnNotFound)
	}

	next := shallowCopy(b)
	next.Columns[idx].Title = title
	return next, nil
}

// AddColumn inserts an empty "New Section" column next to the anchor column
func (e *Engine) AddColumn(b models.Board, anchorID string, side Side) (models.Board, models.Column, error) {
	idx := b.ColumnIndex(anchorID)
	if idx < 0 {
		return b, models.Column{}, fmt.Errorf("add column next to %q: %w", anchorID, models.ErrColumnNotFound)
	}

	col := models.Column{
		ID:    types.SectionID(models.SectionIDPrefix, e.newID()),
		Title: models.NewSectionTitle,
		Items: []models.ContentItem{},
	}

	at := idx
	if side == SideRight {
		at = idx + 1
	}

	next := models.Board{Columns: slices.Insert(slices.Clone(b.Columns), at, col)}
	return next, col, nil
}

// RemoveColumn deletes a column together with the items it holds.
// The last remaining column can never be removed.
func (e *Engine) RemoveColumn(b models.Board, columnID string) (models.Board, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return b, fmt.Errorf("remove column %q: %w", columnID, models.ErrColumnNotFound)
	}
	if len(b.Columns) <= 1 {
		return b, fmt.Errorf("remove column %q: %w", columnID, models.ErrLastColumn)
	}

	next := models.Board{Columns: slices.Delete(slices.Clone(b.Columns), idx, idx+1)}
	return next, nil
}
