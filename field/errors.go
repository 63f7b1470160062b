package field

import "errors"

var (
	// ErrEmptyGrid indicates a requested dimension is smaller than one.
	ErrEmptyGrid = errors.New("field: grid must have at least one row and one column")
	// ErrTooLarge indicates Nx×Ny does not fit the index type.
	ErrTooLarge = errors.New("field: grid size overflows int")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrBadCell indicates an unknown cell character in a text grid.
	ErrBadCell = errors.New("field: unknown cell character")
)
