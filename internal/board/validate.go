package board

import (
	"fmt"

	"github.com/thenoetrevino/plano/internal/models"
)

// Validate checks the structural invariants of a board: at least one column,
// unique column ids and unique item ids across the whole board
func Validate(b models.Board) error {
	if len(b.Columns) == 0 {
		return fmt.Errorf("board has no columns: %w", models.ErrLastColumn)
	}

	columnIDs := make(map[string]struct{}, len(b.Columns))
	itemIDs := make(map[string]string)
	for _, col := range b.Columns {
		if _, dup := columnIDs[col.ID]; dup {
			return fmt.Errorf("column %q: %w", col.ID, models.ErrDuplicateID)
		}
		columnIDs[col.ID] = struct{}{}

		for _, item := range col.Items {
			if owner, dup := itemIDs[item.ID]; dup {
				return fmt.Errorf("item %q in %q and %q: %w", item.ID, owner, col.ID, models.ErrDuplicateID)
			}
			itemIDs[item.ID] = col.ID
		}
	}
	return nil
}
