// Package despeckle defines tunable options and error definitions for
// border-connected region removal.
package despeckle

import (
	"errors"
	"fmt"
)

// Sentinel errors for despeckle execution.
var (
	// ErrNilGrid is returned if a nil image grid is passed.
	ErrNilGrid = errors.New("despeckle: image grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("despeckle: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offset table for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Option configures despeckling via functional arguments.
// If an Option is invalid (e.g. an unknown connectivity), it is recorded
// internally and surfaced as ErrOptionViolation when Despeckle is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Despeckle run.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// OnClear is called once for every cell cleared to white, with the
	// cell's coordinates, at the moment the cell is discovered.
	OnClear func(col, row int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the canonical settings:
//   - Conn4 (orthogonal neighbors only)
//   - no-op OnClear hook
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		OnClear: func(int, int) {},
		err:     nil,
	}
}

// WithConnectivity selects the neighbor connectivity.
// Values other than Conn4 and Conn8 are invalid → ErrOptionViolation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity (%d)", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithOnClear registers a callback to run for each cleared cell.
func WithOnClear(fn func(col, row int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClear = fn
		}
	}
}
