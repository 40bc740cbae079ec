// Package sudoku implements solved-grid constraint checking on cellgrid.
package sudoku

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/despeck/cellgrid"
	"github.com/katalvlaran/despeck/pnm"
)

// Side is the edge length of a sudoku grid; Box is the edge length of one
// sub-box. Digits run 1..Side.
const (
	Side = 9
	Box  = 3
)

// Sentinel errors for sudoku validation, matched with errors.Is.
var (
	// ErrBadShape indicates input that is not a 9×9 digit grid.
	ErrBadShape = errors.New("sudoku: input must be a 9x9 grid of digits 0..9")

	// ErrDigitRange indicates a cell value outside 1..9.
	ErrDigitRange = errors.New("sudoku: digit out of range")

	// ErrDuplicate indicates a digit repeated within a row, column, or box.
	ErrDuplicate = errors.New("sudoku: duplicate digit")
)

// Load reads a solved sudoku from a plain PGM graymap: kind Gray, 9×9,
// maximum value 9, one digit per sample in row-major order.
// Returns ErrBadShape when the header does not match, or any sample error
// from the reader.
func Load(r *pnm.Reader) (*cellgrid.Grid[int], error) {
	hdr := r.Header()
	if hdr.Kind != pnm.Gray || hdr.Width != Side || hdr.Height != Side || hdr.MaxVal != Side {
		return nil, fmt.Errorf("%w: got %s %dx%d max %d",
			ErrBadShape, hdr.Kind, hdr.Width, hdr.Height, hdr.MaxVal)
	}

	g, err := cellgrid.New[int](Side, Side)
	if err != nil {
		return nil, err
	}
	for row := 0; row < Side; row++ {
		for col := 0; col < Side; col++ {
			v, nerr := r.Next()
			if nerr != nil {
				return nil, nerr
			}
			cell, aerr := g.At(col, row)
			if aerr != nil {
				return nil, aerr
			}
			*cell = v
		}
	}

	return g, nil
}

// Verify reports whether g is a valid solved sudoku: nil when every row,
// column, and aligned 3×3 box holds the digits 1..9 exactly once.
// Returns ErrBadShape for a non-9×9 grid, ErrDigitRange for a cell outside
// 1..9, and ErrDuplicate (wrapped with the violated unit) otherwise.
// Complexity: O(Side²) — one pass, bitmask uniqueness tracking per unit.
func Verify(g *cellgrid.Grid[int]) error {
	if g == nil || g.Width() != Side || g.Height() != Side {
		return ErrBadShape
	}

	var rowSeen, colSeen, boxSeen [Side]uint
	for row := 0; row < Side; row++ {
		for col := 0; col < Side; col++ {
			cell, err := g.At(col, row)
			if err != nil {
				return err
			}
			d := *cell
			if d < 1 || d > Side {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrDigitRange, d, col, row)
			}

			box := (row/Box)*Box + col/Box
			mask := uint(1) << (d - 1)
			switch {
			case rowSeen[row]&mask != 0:
				return fmt.Errorf("%w: %d twice in row %d", ErrDuplicate, d, row)
			case colSeen[col]&mask != 0:
				return fmt.Errorf("%w: %d twice in column %d", ErrDuplicate, d, col)
			case boxSeen[box]&mask != 0:
				return fmt.Errorf("%w: %d twice in box %d", ErrDuplicate, d, box)
			}
			rowSeen[row] |= mask
			colSeen[col] |= mask
			boxSeen[box] |= mask
		}
	}

	return nil
}
