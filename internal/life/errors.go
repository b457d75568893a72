package life

import (
	"errors"
	"fmt"
)

// Domain errors for grid construction.
var (
	// ErrInvalidDimension indicates a grid built with a negative row or column count.
	ErrInvalidDimension = errors.New("life: invalid grid dimension")

	// ErrInvalidGrid indicates raw cell data outside the binary domain or with ragged rows.
	ErrInvalidGrid = errors.New("life: invalid grid")
)

// InvalidDimensionError reports the dimensions that were rejected.
type InvalidDimensionError struct {
	Rows int
	Cols int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%v: %dx%d", ErrInvalidDimension, e.Rows, e.Cols)
}

func (e *InvalidDimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// InvalidGridError points at the first offending cell.
type InvalidGridError struct {
	Row    int
	Col    int
	Value  uint8
	Reason string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("%v: (%d,%d): %s", ErrInvalidGrid, e.Row, e.Col, e.Reason)
}

func (e *InvalidGridError) Unwrap() error {
	return ErrInvalidGrid
}
