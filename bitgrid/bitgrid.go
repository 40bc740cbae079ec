// Package bitgrid implements the packed 2D bit grid: creation, value-based
// cell access, and whole-grid utilities over a flat uint64 word slice.
package bitgrid

import (
	"fmt"
	"math/bits"
	"strings"
)

// wordBits is the number of cells packed into one backing word.
const wordBits = 64

// Grid is a width×height grid of single-bit cells packed into uint64 words.
// The cell at (col, row) occupies logical index row*width + col; its word is
// index/64 and its bit is index%64. Dimensions are immutable for the grid's
// lifetime; all cells start at 0.
type Grid struct {
	width, height int
	words         []uint64 // flat packed storage, ceil(width*height/64) words
}

// New creates a width×height grid with every cell set to 0.
// Returns ErrInvalidDimensions when width <= 0 or height <= 0.
// Complexity: O(W×H) time and O(W×H / 64) memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	total := width * height
	nWords := (total + wordBits - 1) / wordBits

	return &Grid{
		width:  width,
		height: height,
		words:  make([]uint64, nWords),
	}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (col,row) lies within the grid extent.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// indexOf maps (col,row) to the flat cell index, or reports ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) indexOf(method string, col, row int) (int, error) {
	if !g.InBounds(col, row) {
		return 0, gridErrorf(method, col, row, ErrOutOfBounds)
	}

	return row*g.width + col, nil
}

// Get returns the bit (0 or 1) stored at (col,row).
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Get(col, row int) (int, error) {
	idx, err := g.indexOf("Get", col, row)
	if err != nil {
		return 0, err
	}

	return int(g.words[idx/wordBits]>>(uint(idx)%wordBits)) & 1, nil
}

// Put stores bit (0 or 1) at (col,row) and returns the previous value held
// there. Returns ErrInvalidBit when bit is neither 0 nor 1, ErrOutOfBounds
// for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Put(col, row, bit int) (int, error) {
	if bit != 0 && bit != 1 {
		return 0, gridErrorf("Put", col, row, ErrInvalidBit)
	}
	idx, err := g.indexOf("Put", col, row)
	if err != nil {
		return 0, err
	}
	word, mask := idx/wordBits, uint64(1)<<(uint(idx)%wordBits)
	prev := int(g.words[word]>>(uint(idx)%wordBits)) & 1
	if bit == 1 {
		g.words[word] |= mask
	} else {
		g.words[word] &^= mask
	}

	return prev, nil
}

// Count returns the number of cells currently set to 1.
// Complexity: O(W×H / 64).
func (g *Grid) Count() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(W×H / 64).
func (g *Grid) Clone() *Grid {
	words := make([]uint64, len(g.words))
	copy(words, g.words)

	return &Grid{width: g.width, height: g.height, words: words}
}

// String implements fmt.Stringer for easy debugging: one line per row,
// cells rendered as '0'/'1' without separators.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			bit, _ := g.Get(col, row)
			b.WriteByte('0' + byte(bit))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)
