// Package column implements the "plano column" commands
package column

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns and sections",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// columnSummary is the JSON shape of a column without its items
type columnSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
	ItemCount int    `json:"itemCount"`
	Status    string `json:"status,omitempty"`
}

func (c columnSummary) GetID() string {
	return c.ID
}

func summarize(b models.Board, columnID string) (columnSummary, bool) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return columnSummary{}, false
	}
	return summaryAt(b, idx), true
}

func summaryAt(b models.Board, idx int) columnSummary {
	col := b.Columns[idx]
	summary := columnSummary{
		ID:        col.ID,
		Title:     col.Title,
		Position:  idx,
		ItemCount: len(col.Items),
	}
	if status, ok := models.StatusForColumn(col.ID); ok {
		summary.Status = string(status)
	}
	return summary
}
