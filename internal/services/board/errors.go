package board

import "errors"

// Board service errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrTitleTooLong = errors.New("title cannot exceed 255 characters")
	ErrNoPlatforms  = errors.New("at least one platform is required")
)

// maxTitleLength bounds item and column titles
const maxTitleLength = 255
