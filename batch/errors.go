package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector is returned for a nil entry.
	ErrNilVector = errors.New("nil vector")

	// ErrPanic wraps a panic raised while processing an item,
	// such as an integer division by zero.
	ErrPanic = errors.New("panic in vector operation")
)

// ItemError reports which entry of a batch failed.
//
// The original underlying error can be accessed via errors.Unwrap.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("batch item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
