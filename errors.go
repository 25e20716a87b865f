package dancevis

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers branch with errors.Is.
var (
	// ErrValidation reports a non-numeric, out-of-range or contradictory
	// construction argument.
	ErrValidation = errors.New("validation error")
	// ErrNotFound reports a child or sub-shape that is not where the caller
	// expected it.
	ErrNotFound = errors.New("not found")
	// ErrIndex reports a row, column or insertion index outside its range.
	ErrIndex = errors.New("index out of range")
)

func validationErrorf(op, format string, args ...any) error {
	return fmt.Errorf("dancevis: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrValidation)
}

func notFoundErrorf(op, format string, args ...any) error {
	return fmt.Errorf("dancevis: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrNotFound)
}

func indexErrorf(op string, index, lo, hi int) error {
	return fmt.Errorf("dancevis: %s: index %d outside [%d, %d): %w", op, index, lo, hi, ErrIndex)
}
