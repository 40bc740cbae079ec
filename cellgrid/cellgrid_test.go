// Package cellgrid_test contains unit tests for the generic element Grid.
package cellgrid_test

import (
	"testing"

	"github.com/katalvlaran/despeck/cellgrid"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := cellgrid.New[int](0, 4)
	require.ErrorIs(t, err, cellgrid.ErrInvalidDimensions)

	_, err = cellgrid.New[int](4, -1)
	require.ErrorIs(t, err, cellgrid.ErrInvalidDimensions)
}

// TestNewZeroSizedElement ensures New rejects zero-sized element types.
func TestNewZeroSizedElement(t *testing.T) {
	_, err := cellgrid.New[struct{}](3, 3)
	require.ErrorIs(t, err, cellgrid.ErrInvalidElementSize)
}

// TestAccessors verifies Width, Height and Size.
func TestAccessors(t *testing.T) {
	g, err := cellgrid.New[int64](5, 2)
	require.NoError(t, err)

	require.Equal(t, 5, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 8, g.Size())
}

// TestAtReadWrite validates that writes through the pointer returned by At
// are visible via subsequent At calls on the same coordinate.
func TestAtReadWrite(t *testing.T) {
	g, err := cellgrid.New[int](3, 3)
	require.NoError(t, err)

	p, err := g.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 0, *p) // zero-initialized
	*p = 42

	q, err := g.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 42, *q)
	require.Same(t, p, q) // same backing slot, not a copy
}

// TestAtOutOfBounds ensures At rejects coordinates outside the extent.
func TestAtOutOfBounds(t *testing.T) {
	g, err := cellgrid.New[int](3, 2)
	require.NoError(t, err)

	bad := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}}
	for _, cr := range bad {
		_, err = g.At(cr[0], cr[1])
		require.ErrorIsf(t, err, cellgrid.ErrOutOfBounds, "At(%d,%d)", cr[0], cr[1])
	}
}

// TestStructElements exercises record-typed cells accessed in place.
func TestStructElements(t *testing.T) {
	type cell struct {
		Digit int
		Seen  bool
	}
	g, err := cellgrid.New[cell](2, 2)
	require.NoError(t, err)

	p, err := g.At(0, 1)
	require.NoError(t, err)
	p.Digit, p.Seen = 7, true

	q, err := g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, cell{Digit: 7, Seen: true}, *q)
}

// TestTraversalOrders verifies both traversal orders and the equality of
// the visited coordinate sets.
func TestTraversalOrders(t *testing.T) {
	g, err := cellgrid.New[int](2, 3)
	require.NoError(t, err)

	var rowOrder [][2]int
	g.EachRowMajor(func(col, row int, _ *int) {
		rowOrder = append(rowOrder, [2]int{col, row})
	})
	require.Equal(t, [][2]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{0, 2}, {1, 2},
	}, rowOrder)

	var colOrder [][2]int
	g.EachColMajor(func(col, row int, _ *int) {
		colOrder = append(colOrder, [2]int{col, row})
	})
	require.Equal(t, [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, colOrder)

	require.Len(t, rowOrder, 6)
	require.ElementsMatch(t, rowOrder, colOrder)
}

// TestTraversalMutation verifies in-place mutation during traversal sticks.
func TestTraversalMutation(t *testing.T) {
	g, err := cellgrid.New[int](3, 3)
	require.NoError(t, err)

	g.EachColMajor(func(col, row int, elem *int) {
		*elem = row*3 + col
	})

	p, err := g.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 8, *p)

	p, err = g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, *p)
}

// TestCloneIndependence ensures Clone copies the backing storage.
func TestCloneIndependence(t *testing.T) {
	g, err := cellgrid.New[int](2, 2)
	require.NoError(t, err)
	p, err := g.At(0, 0)
	require.NoError(t, err)
	*p = 5

	c := g.Clone()
	cp, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5, *cp)
	*cp = 9

	require.Equal(t, 5, *p) // original untouched
}
