// Package pnm - whole-image bitmap decoding and encoding on bitgrid.
package pnm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/despeck/bitgrid"
)

// ReadBitmap decodes a whole plain PBM (P1) image from r into a new
// bitgrid.Grid, filling cells in row-major order.
// Returns ErrKindMismatch when the input is not a P1 bitmap, plus any
// header or sample error from the underlying Reader; for a bitmap every
// sample outside {0,1} is ErrSampleRange.
// Complexity: O(W×H).
func ReadBitmap(r io.Reader) (*bitgrid.Grid, error) {
	pr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	hdr := pr.Header()
	if hdr.Kind != Bit {
		return nil, fmt.Errorf("%w: got %s, want bitmap", ErrKindMismatch, hdr.Kind)
	}

	g, err := bitgrid.New(hdr.Width, hdr.Height)
	if err != nil {
		return nil, err
	}
	for row := 0; row < hdr.Height; row++ {
		for col := 0; col < hdr.Width; col++ {
			bit, nerr := pr.Next()
			if nerr != nil {
				return nil, nerr
			}
			if _, perr := g.Put(col, row, bit); perr != nil {
				return nil, perr
			}
		}
	}

	return g, nil
}

// WriteBitmap serializes g as a plain PBM image: the "P1" tag line, a line
// with width and height, then one line per row with space-separated bits in
// row-major order.
// Returns ErrNilGrid for a nil grid and any write error from w.
// Complexity: O(W×H).
func WriteBitmap(w io.Writer, g *bitgrid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", g.Width(), g.Height()); err != nil {
		return err
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			bit, _ := g.Get(col, row)
			sep := byte(' ')
			if col == g.Width()-1 {
				sep = '\n'
			}
			if _, err := fmt.Fprintf(bw, "%d%c", bit, sep); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
