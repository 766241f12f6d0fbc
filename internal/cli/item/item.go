// Package item implements the "plano item" commands
package item

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plano/internal/models"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage content items",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(RescheduleCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// itemView is an item together with the column holding it
type itemView struct {
	models.ContentItem
	Column string `json:"column"`
}

func (v itemView) GetID() string {
	return v.ID
}

// viewOf locates itemID on b
func viewOf(b models.Board, itemID string) (itemView, bool) {
	ci, ii, ok := b.FindItem(itemID)
	if !ok {
		return itemView{}, false
	}
	return itemView{ContentItem: b.Columns[ci].Items[ii], Column: b.Columns[ci].ID}, true
}

// addItemFlag registers the required --item flag
func addItemFlag(cmd *cobra.Command) {
	cmd.Flags().String("item", "", "Item ID (required)")
	if err := cmd.MarkFlagRequired("item"); err != nil {
		cmd.PrintErrf("Error marking flag as required: %v\n", err)
	}
}
