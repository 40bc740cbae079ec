// Package cellgrid implements the generic 2D element grid: creation,
// pointer-based element access, and ordered traversal over a flat slice.
package cellgrid

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for cellgrid operations, matched with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("cellgrid: dimensions must be > 0")

	// ErrInvalidElementSize indicates a zero-sized element type.
	ErrInvalidElementSize = errors.New("cellgrid: element size must be > 0")

	// ErrOutOfBounds indicates a (col,row) coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("cellgrid: coordinate out of bounds")
)

// Grid is a width×height grid of T elements in a single row-major backing
// slice. Element (col, row) lives at flat index row*width + col. Dimensions
// and element size are immutable for the grid's lifetime; all elements start
// at the zero value of T.
type Grid[T any] struct {
	width, height int
	elemSize      int // size of one element in bytes, fixed at creation
	data          []T // flat backing storage, length == width*height
}

// New creates a width×height grid of zero-valued T elements.
// Returns ErrInvalidDimensions when width <= 0 or height <= 0, and
// ErrInvalidElementSize when T is a zero-sized type (e.g. struct{}), since a
// grid of unaddressable, indistinguishable elements cannot honor At's
// pointer contract.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	size := int(reflect.TypeOf((*T)(nil)).Elem().Size())
	if size <= 0 {
		return nil, ErrInvalidElementSize
	}

	return &Grid[T]{
		width:    width,
		height:   height,
		elemSize: size,
		data:     make([]T, width*height),
	}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Height() int {
	return g.height
}

// Size returns the size in bytes of one element.
// Complexity: O(1).
func (g *Grid[T]) Size() int {
	return g.elemSize
}

// InBounds reports whether (col,row) lies within the grid extent.
// Complexity: O(1).
func (g *Grid[T]) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns a pointer to the element at (col,row). The pointer addresses
// the grid's backing storage directly: writes through it are visible to all
// subsequent reads, and it remains valid for the grid's lifetime.
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid[T]) At(col, row int) (*T, error) {
	if !g.InBounds(col, row) {
		return nil, fmt.Errorf("Grid.At(%d,%d): %w", col, row, ErrOutOfBounds)
	}

	return &g.data[row*g.width+col], nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{width: g.width, height: g.height, elemSize: g.elemSize, data: data}
}

// EachRowMajor calls fn once for every element in row-major order:
// (0,0),(1,0),…,(W-1,0),(0,1),… — all columns of a row before the next row.
// The visitor receives the addressable element and may mutate it in place.
// Complexity: O(W×H).
func (g *Grid[T]) EachRowMajor(fn func(col, row int, elem *T)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(col, row, &g.data[row*g.width+col])
		}
	}
}

// EachColMajor calls fn once for every element in column-major order:
// (0,0),(0,1),…,(0,H-1),(1,0),… — all rows of a column before the next column.
// The visitor receives the addressable element and may mutate it in place.
// Complexity: O(W×H).
func (g *Grid[T]) EachColMajor(fn func(col, row int, elem *T)) {
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			fn(col, row, &g.data[row*g.width+col])
		}
	}
}
