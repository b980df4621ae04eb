package operators

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDomain is matched by every DomainError.
var ErrDomain = errors.New("math domain error")

// DomainError reports an input outside the domain of a transcendental
// operator, such as the logarithm of a non-positive number.
type DomainError struct {
	Op    string  // Operator name, e.g. "log".
	Input float64 // Offending input.
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %v", e.Op, e.Input, ErrDomain)
}

// Unwrap returns ErrDomain so errors.Is matches the sentinel.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}
