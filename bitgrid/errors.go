// Package bitgrid defines sentinel errors for packed bit-grid operations.
package bitgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for bitgrid operations.
// All public operations return these sentinels (possibly wrapped with
// coordinate context via %w); callers match them with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("bitgrid: dimensions must be > 0")

	// ErrOutOfBounds indicates a (col,row) coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("bitgrid: coordinate out of bounds")

	// ErrInvalidBit indicates a cell value other than 0 or 1.
	ErrInvalidBit = errors.New("bitgrid: bit value must be 0 or 1")
)

// gridErrorf wraps an underlying sentinel with Grid method context and the
// offending coordinates, preserving errors.Is matching.
func gridErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, col, row, err)
}
