// Package minsky - deterministic port layout of the doubling machine.
package minsky

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/repmaze/maze"
)

// Terminal-index allocation of the doubling-machine layout.
//
// Cycle 1 occupies indices 2..11 (gap at 6), the fixed extraction phase
// occupies 12..14, and every further cycle occupies a 12-index band starting
// at 15. Index 0 is the start terminal, index 1 the goal.
const (
	startIndex = 0 // W0: walker entry
	goalIndex  = 1 // W1: walker exit

	phase3Head   = 12 // Phase 3 head (DEC_Y loop)
	phase3NYOut  = 13 // Phase 3 ny catch target
	phase3Bridge = 14 // Phase 3 bridge to the goal

	repeatBase  = 15 // first terminal index of cycle 2
	cycleStride = 12 // index band width of each cycle past the first
)

// firstCycle is the fixed (a, b, c) triple of cycle 1; later cycles follow
// the stride pattern relative to repeatBase.
var firstCycle = CycleTriple{A: 2, B: 7, C: 11}

// CycleTriples returns the per-cycle base-index triples (a, b, c) for
// cycles 1..k: (2, 7, 11), then a = 15 + 12·(i−2), b = a+5, c = a+9.
//
// Returns ErrNonPositiveCycles for k < 1.
// Complexity: O(k).
func CycleTriples(k int) ([]CycleTriple, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveCycles, k)
	}
	triples := make([]CycleTriple, 0, k)
	triples = append(triples, firstCycle)
	for i := 2; i <= k; i++ {
		a := repeatBase + cycleStride*(i-2)
		triples = append(triples, CycleTriple{A: a, B: a + 5, C: a + 9})
	}
	return triples, nil
}

// MazeLayout is the deterministic port layout of a k-cycle doubling
// machine. The three groups preserve emission order, which makes the
// serialized form reproducible; as sets the order carries no meaning.
type MazeLayout struct {
	// Normal holds the normal-block ports in emission order.
	Normal []maze.Port
	// NX holds the east-boundary catch ports, one per cycle.
	NX []maze.Port
	// NY holds the north-boundary catch ports, one per cycle plus the
	// Phase 3 catch.
	NY []maze.Port

	termCount int
}

// Layout generates the port layout of the k-fold ×2 doubling machine.
//
// Per cycle with triple (a, b, c): the entry transition (from W0 for the
// first cycle, otherwise from the previous cycle's c terminal), four
// Phase 1 ports, the ny catch a→b, four Phase 2 ports, and the nx catch.
// After the last cycle the layout closes with the fixed Phase 3 block on
// indices 12..14 and the goal port E14→W1.
//
// Returns ErrNonPositiveCycles for k < 1.
// Complexity: O(k).
func Layout(k int) (*MazeLayout, error) {
	triples, err := CycleTriples(k)
	if err != nil {
		return nil, err
	}
	nterm, err := TermCount(k)
	if err != nil {
		return nil, err
	}

	l := &MazeLayout{termCount: nterm}
	for ci, t := range triples {
		// Entry into Phase 1.
		if ci == 0 {
			l.normal(maze.DirW, startIndex, maze.DirN, t.A)
		} else {
			l.normal(maze.DirW, triples[ci-1].C, maze.DirN, t.A)
		}

		// Phase 1: the y-countdown loop around a..a+3.
		l.normal(maze.DirN, t.A, maze.DirE, t.A+1)
		l.normal(maze.DirW, t.A+1, maze.DirE, t.A+2)
		l.normal(maze.DirW, t.A+2, maze.DirN, t.A+3)
		l.normal(maze.DirN, t.A+3, maze.DirS, t.A)

		// ny catch: y exhausted, fall through to Phase 2.
		l.NY = append(l.NY, maze.Port{FromDir: maze.DirN, FromIndex: t.A, ToDir: maze.DirN, ToIndex: t.B})

		// Phase 2: the x-countdown loop around b..b+3.
		l.normal(maze.DirS, t.B, maze.DirE, t.B+1)
		l.normal(maze.DirE, t.B+1, maze.DirW, t.B+2)
		l.normal(maze.DirE, t.B+2, maze.DirN, t.B+3)
		l.normal(maze.DirS, t.B+3, maze.DirE, t.B+1)

		// nx catch: x exhausted, cycle complete.
		l.NX = append(l.NX, maze.Port{FromDir: maze.DirE, FromIndex: t.B + 2, ToDir: maze.DirE, ToIndex: t.C})
	}

	// Phase 3: extraction on the fixed index band, then the goal.
	l.normal(maze.DirW, triples[len(triples)-1].C, maze.DirN, phase3Head)
	l.normal(maze.DirN, phase3Head, maze.DirS, phase3Head)
	l.NY = append(l.NY, maze.Port{FromDir: maze.DirN, FromIndex: phase3Head, ToDir: maze.DirN, ToIndex: phase3NYOut})
	l.normal(maze.DirS, phase3NYOut, maze.DirE, phase3Bridge)
	l.normal(maze.DirE, phase3Bridge, maze.DirW, goalIndex)

	return l, nil
}

// normal appends one normal-group port.
func (l *MazeLayout) normal(sd maze.Direction, si int, dd maze.Direction, di int) {
	l.Normal = append(l.Normal, maze.Port{FromDir: sd, FromIndex: si, ToDir: dd, ToIndex: di})
}

// TermCount returns the number of terminal indices the layout allocates.
func (l *MazeLayout) TermCount() int { return l.termCount }

// MaxIndex returns the largest terminal index referenced by any port.
// The allocation invariant MaxIndex()+1 == TermCount() holds for every k.
// Complexity: O(k).
func (l *MazeLayout) MaxIndex() int {
	max := 0
	for _, group := range [][]maze.Port{l.Normal, l.NX, l.NY} {
		for _, p := range group {
			if p.FromIndex > max {
				max = p.FromIndex
			}
			if p.ToIndex > max {
				max = p.ToIndex
			}
		}
	}
	return max
}

// String serializes the layout as
//
//	normal: <ports>; nx: <ports>; ny: <ports>
//
// preserving emission order within each group.
// Complexity: O(k).
func (l *MazeLayout) String() string {
	var b strings.Builder
	b.WriteString("normal: ")
	b.WriteString(joinPorts(l.Normal))
	b.WriteString("; nx: ")
	b.WriteString(joinPorts(l.NX))
	b.WriteString("; ny: ")
	b.WriteString(joinPorts(l.NY))
	return b.String()
}

// joinPorts renders ports as ", "-separated tokens.
func joinPorts(ports []maze.Port) string {
	tokens := make([]string, len(ports))
	for i, p := range ports {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, ", ")
}

// Build materializes the layout into a maze.Maze on TermCount() terminals,
// ready for the solver. Every emitted port is in range by construction, so
// the only error source is the underlying maze constructor.
// Complexity: O(k²) memory for the port matrices.
func (l *MazeLayout) Build() (*maze.Maze, error) {
	m, err := maze.New(l.termCount)
	if err != nil {
		return nil, err
	}
	for _, p := range l.Normal {
		if err = m.SetNormalPort(p.FromDir, p.FromIndex, p.ToDir, p.ToIndex, true); err != nil {
			return nil, err
		}
	}
	for _, p := range l.NX {
		if err = m.SetNXPort(p.FromIndex, p.ToIndex, true); err != nil {
			return nil, err
		}
	}
	for _, p := range l.NY {
		if err = m.SetNYPort(p.FromIndex, p.ToIndex, true); err != nil {
			return nil, err
		}
	}
	return m, nil
}
