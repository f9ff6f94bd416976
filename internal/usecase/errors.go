package usecase

import (
	"errors"
	"fmt"

	"salon-agenda/pkg/utils"
)

// Error taxonomy surfaced to handlers:
//   - *ValidationError: bad input, raised before any write
//   - ErrNotFound: the target id does not exist (or was never cached)
//   - ErrInvalidState: the operation is not legal in the entity's current state
//
// Availability-index write failures are deliberately NOT part of this
// taxonomy: the reconciler logs and swallows them (see reconciler.go).
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func validationFieldsError(fields map[string]string) *ValidationError {
	return &ValidationError{
		Message: utils.FormatValidationErrors(fields),
		Fields:  fields,
	}
}
