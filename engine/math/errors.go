package math

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is wrapped by every DegenerateError.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateError reports an operation whose inputs leave the result
// undefined (zero length, singular matrix, negative square root).
type DegenerateError struct {
	Op     string
	Reason string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrDegenerateInput, e.Reason)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateInput
}

func degenerate(op, reason string) error {
	return &DegenerateError{Op: op, Reason: reason}
}
