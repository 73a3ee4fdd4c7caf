package fixedvec

import (
	"errors"
	"fmt"
)

var (
	// ErrMovedFrom is returned (or panicked with) when a moved-from vector
	// is read or used as an operand.
	ErrMovedFrom = errors.New("vector is moved-from")
)

// ErrSizeMismatch indicates that a value sequence does not have exactly N elements.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d values, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates a checked access outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}
