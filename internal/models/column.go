package models

// Column is a named ordered bucket of content items (a board status or an
// ad-hoc section). Item order is the display and drag order.
type Column struct {
	ID    string        `yaml:"id" json:"id"`
	Title string        `yaml:"title" json:"title"`
	Items []ContentItem `yaml:"items" json:"items"`
}

// Board is the ordered set of columns making up the planning board.
// Values are treated as immutable snapshots: mutations return a new Board.
type Board struct {
	Columns []Column `yaml:"columns" json:"columns"`
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := Board{Columns: make([]Column, len(b.Columns))}
	for i, col := range b.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := Column{ID: c.ID, Title: c.Title}
	if c.Items != nil {
		out.Items = make([]ContentItem, len(c.Items))
		for i, item := range c.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// ColumnIndex returns the position of the column with the given id, or -1
func (b Board) ColumnIndex(columnID string) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id
func (b Board) Column(columnID string) (Column, bool) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return Column{}, false
	}
	return b.Columns[idx], true
}

// FindItem locates an item by id, returning its column and position
func (b Board) FindItem(itemID string) (colIdx, itemIdx int, ok bool) {
	for ci, col := range b.Columns {
		for ii, item := range col.Items {
			if item.ID == itemID {
				return ci, ii, true
			}
		}
	}
	return -1, -1, false
}

// Items flattens the board into a single list in board order
func (b Board) Items() []ContentItem {
	var items []ContentItem
	for _, col := range b.Columns {
		items = append(items, col.Items...)
	}
	return items
}

// ItemCount returns the total number of items across all columns
func (b Board) ItemCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Items)
	}
	return n
}

// DefaultColumns returns the four status columns with no items
func DefaultColumns() []Column {
	cols := make([]Column, len(Statuses))
	for i, s := range Statuses {
		cols[i] = Column{ID: string(s), Title: s.Title(), Items: []ContentItem{}}
	}
	return cols
}
