package bitgrid

// VisitFunc receives one cell during a traversal: its coordinates and the
// bit stored there. Mutating the grid from inside a visit is permitted but
// already-visited cells are not revisited.
type VisitFunc func(col, row, bit int)

// EachRowMajor calls fn once for every cell in row-major order:
// (0,0),(1,0),…,(W-1,0),(0,1),… — all columns of a row before the next row.
// Complexity: O(W×H).
func (g *Grid) EachRowMajor(fn VisitFunc) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			bit, _ := g.Get(col, row)
			fn(col, row, bit)
		}
	}
}

// EachColMajor calls fn once for every cell in column-major order:
// (0,0),(0,1),…,(0,H-1),(1,0),… — all rows of a column before the next column.
// Complexity: O(W×H).
func (g *Grid) EachColMajor(fn VisitFunc) {
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			bit, _ := g.Get(col, row)
			fn(col, row, bit)
		}
	}
}
