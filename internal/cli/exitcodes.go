package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/plano/internal/models"
	boardservice "github.com/thenoetrevino/plano/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, config errors, unexpected failures.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested column or item does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed stored data.
	// Use for: A seed file or snapshot that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, unknown platforms, bad dates, out of range
	// positions, or removing the last column.
	ExitValidation = 5
)

// Input errors raised by flag parsing
var (
	ErrUsage        = errors.New("invalid usage")
	ErrInvalidInput = errors.New("invalid input")
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

// Classify returns the machine-readable error code and exit code for err
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, models.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrItemNotFound):
		return "ITEM_NOT_FOUND", ExitNotFound
	case errors.Is(err, models.ErrIndexOutOfRange):
		return "INVALID_POSITION", ExitValidation
	case errors.Is(err, models.ErrLastColumn):
		return "LAST_COLUMN", ExitValidation
	case errors.Is(err, models.ErrInvalidDate):
		return "INVALID_DATE", ExitValidation
	case errors.Is(err, boardservice.ErrEmptyTitle),
		errors.Is(err, boardservice.ErrTitleTooLong),
		errors.Is(err, boardservice.ErrNoPlatforms),
		errors.Is(err, ErrInvalidInput):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ExitUsage
	case errors.Is(err, models.ErrDuplicateID):
		return "DATA_ERROR", ExitDataErr
	}
	return "INTERNAL_ERROR", ExitFailure
}
