// Package despeckle implements border-connected black region removal on a
// packed bit grid, using an explicit-queue breadth-first search.
package despeckle

import (
	"github.com/katalvlaran/despeck/bitgrid"
)

// Result holds the outcome of one Despeckle run.
type Result struct {
	// Cleared is the number of cells flipped from black to white.
	Cleared int
}

// Despeckle clears every black cell of img reachable from the image border
// through a chain of adjacent black cells, mutating img in place.
// Returns ErrNilGrid for a nil image and ErrOptionViolation for bad options.
//
// Cells are marked visited and cleared at enqueue time, so each cell enters
// the queue at most once; corners seeded by two border edges and the 1×1
// single-cell image are handled by the same visited check, with no special
// cases.
//
// Complexity: O(W×H) time, O(W×H) auxiliary memory.
func Despeckle(img *bitgrid.Grid, opts ...Option) (*Result, error) {
	if img == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, h := img.Width(), img.Height()
	// Scoped to this run; discarded when the fill completes.
	visited, err := bitgrid.New(w, h)
	if err != nil {
		return nil, err
	}

	s := &sweep{
		img:     img,
		visited: visited,
		offsets: o.Conn.offsets(),
		onClear: o.OnClear,
	}

	// Seed phase: top and bottom rows, then left and right columns.
	// The visited check inside absorb de-duplicates the four corners.
	for col := 0; col < w; col++ {
		s.absorb(col, 0)
		s.absorb(col, h-1)
	}
	for row := 0; row < h; row++ {
		s.absorb(0, row)
		s.absorb(w-1, row)
	}

	// Expansion phase: FIFO walk, expanding neighbors of each dequeued cell.
	for qi := 0; qi < len(s.queue); qi++ {
		col, row := s.queue[qi]%w, s.queue[qi]/w
		for _, d := range s.offsets {
			s.absorb(col+d[0], row+d[1])
		}
	}

	return &Result{Cleared: s.cleared}, nil
}

// sweep encapsulates mutable state of one Despeckle run.
type sweep struct {
	img     *bitgrid.Grid
	visited *bitgrid.Grid
	offsets [][2]int
	onClear func(col, row int)
	queue   []int // FIFO of row-major cell indices, consumed by index walk
	cleared int
}

// absorb enqueues (col,row) if it is in bounds, black, and not yet visited,
// clearing the image cell to white at enqueue time. Out-of-bounds and
// already-processed coordinates are ignored.
func (s *sweep) absorb(col, row int) {
	if !s.img.InBounds(col, row) {
		return
	}
	if bit, _ := s.img.Get(col, row); bit != 1 {
		return
	}
	if seen, _ := s.visited.Get(col, row); seen == 1 {
		return
	}
	_, _ = s.visited.Put(col, row, 1)
	_, _ = s.img.Put(col, row, 0)
	s.cleared++
	s.onClear(col, row)
	s.queue = append(s.queue, row*s.img.Width()+col)
}
