package seq

import (
	"fmt"

	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrEmptySequence  = errors.New("fold of empty sequence with no initial value")
	ErrExhaustedInput = errors.New("second sequence exhausted before the first")
	ErrConsumed       = errors.New("single-pass sequence traversed more than once")
)

// ExhaustedInputError reports the first position of the leading sequence
// that had no partner in the trailing one.
type ExhaustedInputError struct {
	Index int // Zero-based position of the unmatched element.
}

// Error implements the error interface.
func (e *ExhaustedInputError) Error() string {
	return fmt.Sprintf("%v: no element at index %d", ErrExhaustedInput, e.Index)
}

// Unwrap returns ErrExhaustedInput so errors.Is matches the sentinel.
func (e *ExhaustedInputError) Unwrap() error {
	return ErrExhaustedInput
}
