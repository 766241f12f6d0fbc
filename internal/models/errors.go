package models

import "errors"

// Domain-specific errors shared by the board, calendar and deadline engines
var (
	// ErrColumnNotFound indicates a column id that is not on the board
	ErrColumnNotFound = errors.New("column not found")

	// ErrItemNotFound indicates an item id that is not on the board
	ErrItemNotFound = errors.New("item not found")

	// ErrIndexOutOfRange indicates a source or destination position outside the column
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLastColumn indicates an attempt to remove the only remaining column
	ErrLastColumn = errors.New("cannot remove the last column")

	// ErrInvalidDate indicates a scheduled date that is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

	// ErrDuplicateID indicates two columns or two items sharing an id
	ErrDuplicateID = errors.New("duplicate id")
)
