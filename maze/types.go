// Package maze defines core types and sentinel errors for the maze model.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrTermCount indicates a terminal count below the minimum of 2.
	ErrTermCount = errors.New("maze: terminal count must be at least 2")
	// ErrPortRange indicates port coordinates outside the maze dimensions
	// or a forbidden nx/ny self-edge.
	ErrPortRange = errors.New("maze: port coordinates out of range")
	// ErrParse indicates malformed maze description text.
	ErrParse = errors.New("maze: malformed maze description")
)

// Direction identifies one side of a block terminal. The numeric order
// (E, W, N, S) is also the serialization order of the normal port table.
type Direction int

const (
	// DirE is the east side of a block.
	DirE Direction = iota
	// DirW is the west side of a block.
	DirW
	// DirN is the north side of a block.
	DirN
	// DirS is the south side of a block.
	DirS

	// numDirections is the number of terminal directions per block.
	numDirections = 4
)

// dirNames maps Direction values to their single-letter names.
var dirNames = [numDirections]string{"E", "W", "N", "S"}

// String returns the single-letter compass name of d, or "?" for
// out-of-range values.
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "?"
	}
	return dirNames[d]
}

// ParseDirection converts a single compass letter (case-insensitive) into a
// Direction. Returns ErrParse for any other byte.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'E', 'e':
		return DirE, nil
	case 'W', 'w':
		return DirW, nil
	case 'N', 'n':
		return DirN, nil
	case 'S', 's':
		return DirS, nil
	default:
		return 0, fmt.Errorf("%w: invalid direction %q", ErrParse, string(c))
	}
}

// Port is a directed connection between two block terminals,
// serialized as "<Dir><Index>-><Dir><Index>", e.g. "N2->E3".
type Port struct {
	FromDir   Direction
	FromIndex int
	ToDir     Direction
	ToIndex   int
}

// String renders the port in its canonical textual form.
func (p Port) String() string {
	return fmt.Sprintf("%s%d->%s%d", p.FromDir, p.FromIndex, p.ToDir, p.ToIndex)
}

// Maze holds the port configuration of a repeated-block maze with nterm
// terminals per block side. The zero value is not usable; construct with New.
type Maze struct {
	nterm  int
	normal []bool // (4·nterm)² entries, row-major by (fromDir,fromIdx)
	nx     []bool // nterm·(nterm−1) entries, east boundary, no self-edges
	ny     []bool // nterm·(nterm−1) entries, north boundary, no self-edges
}

// TermCount returns the number of terminals per block side.
func (m *Maze) TermCount() int { return m.nterm }

// NormalPortCount returns the size of the normal port matrix: (4·nterm)².
func (m *Maze) NormalPortCount() int { return len(m.normal) }

// EdgePortCount returns the size of each boundary matrix: nterm·(nterm−1).
func (m *Maze) EdgePortCount() int { return len(m.nx) }

// TotalPorts returns the combined number of port slots across all three
// groups; flat indices run over [0, TotalPorts).
func (m *Maze) TotalPorts() int { return len(m.normal) + len(m.nx) + len(m.ny) }
