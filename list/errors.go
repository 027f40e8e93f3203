package list

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList    = errors.New("list is empty")
	ErrInvalidIndex = errors.New("invalid index")
	ErrNotFound     = errors.New("value not found")
)

// IndexError reports an index outside the range accepted by an operation.
type IndexError struct {
	Index int
	Size  int
}

var _ error = &IndexError{}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %v (size %v)", ErrInvalidIndex, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}
