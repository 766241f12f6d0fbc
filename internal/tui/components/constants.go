package components

const (
	// ColumnWidth is the content width of a board column
	ColumnWidth = 32

	// CardWidth is the content width of a card inside a column
	CardWidth = 28

	// CardHeight is the fixed height of a card, borders included
	CardHeight = 6

	// cardTitleMaxWidth leaves room for the left padding and borders
	cardTitleMaxWidth = CardWidth - 4
)
