// Package solver defines canonical states, options, and sentinel errors for
// the BFS walker.
package solver

import (
	"errors"
	"fmt"
)

// Sentinel errors for Solve.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("solver: maze is nil")
	// ErrNoPath is returned when the goal terminal is unreachable within
	// the coordinate box.
	ErrNoPath = errors.New("solver: no path to goal within coordinate bound")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Axis is the orientation of a canonical state. Only east and north survive
// canonicalization: a west terminal is the east wall of the block to its
// left, a south terminal the north wall of the block below.
type Axis int

const (
	// AxisE marks a state on the east wall of its block.
	AxisE Axis = iota
	// AxisN marks a state on the north wall of its block.
	AxisN
)

// String returns "E" or "N", or "?" for out-of-range values.
func (a Axis) String() string {
	switch a {
	case AxisE:
		return "E"
	case AxisN:
		return "N"
	default:
		return "?"
	}
}

// State is a canonical walker position: block coordinates, wall axis, and
// terminal index on that wall.
type State struct {
	X, Y  int
	Axis  Axis
	Index int
}

// String renders the state as "(x,y,E0)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%s%d)", s.X, s.Y, s.Axis, s.Index)
}

// defaultMaxCoord bounds the explored coordinate box when no option is given.
const defaultMaxCoord = 1000

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the tunable parameters of a solve run.
type Options struct {
	// MaxCoord is the inclusive upper bound on both block coordinates;
	// states outside [0, MaxCoord]² are never enqueued.
	MaxCoord int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference defaults:
// MaxCoord = 1000.
func DefaultOptions() Options {
	return Options{MaxCoord: defaultMaxCoord}
}

// WithMaxCoord bounds the explored coordinate box to [0, n]².
// n < 1 is invalid (the start sits at y = 1) → ErrOptionViolation.
func WithMaxCoord(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCoord must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCoord = n
	}
}

// Result holds the outcome of a solve run.
type Result struct {
	// Path lists the visited states from start to goal inclusive.
	Path []State
	// Length is the number of port traversals: len(Path) − 1.
	Length int
}
