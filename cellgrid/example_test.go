// File: cellgrid/example_test.go
package cellgrid_test

import (
	"fmt"

	"github.com/katalvlaran/despeck/cellgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: At
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_At demonstrates pointer-based element access: the returned
// pointer addresses the grid's backing storage, so writes stick.
func ExampleGrid_At() {
	g, _ := cellgrid.New[int](3, 3)

	p, _ := g.At(1, 2)
	*p = 7

	q, _ := g.At(1, 2)
	fmt.Println("stored:", *q)

	// Output:
	// stored: 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: EachColMajor
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_EachColMajor demonstrates column-major traversal with in-place
// mutation: all rows of a column are visited before the next column.
func ExampleGrid_EachColMajor() {
	g, _ := cellgrid.New[int](2, 2)

	n := 0
	g.EachColMajor(func(col, row int, elem *int) {
		*elem = n
		n++
		fmt.Printf("(%d,%d)=%d ", col, row, *elem)
	})
	// Output:
	// (0,0)=0 (0,1)=1 (1,0)=2 (1,1)=3
}
