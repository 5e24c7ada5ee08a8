// Package solver - BFS over the canonical state space of a repeated-block
// maze.
package solver

import (
	"github.com/katalvlaran/repmaze/maze"
)

// walker encapsulates mutable BFS state for one solve run.
type walker struct {
	m        *maze.Maze
	maxCoord int
	queue    []State
	parent   map[State]State
	visited  map[State]bool
}

// Solve searches the shortest walk from the start terminal (0,1,E,0) to the
// goal terminal (0,1,E,1), applying any number of functional Options.
// Returns ErrMazeNil for a nil maze, ErrOptionViolation for bad options,
// and ErrNoPath when the goal is unreachable within the coordinate box.
func Solve(m *maze.Maze, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start := State{X: 0, Y: 1, Axis: AxisE, Index: 0}
	goal := State{X: 0, Y: 1, Axis: AxisE, Index: 1}

	w := &walker{
		m:        m,
		maxCoord: o.MaxCoord,
		queue:    []State{start},
		parent:   make(map[State]State),
		visited:  map[State]bool{start: true},
	}

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		for _, next := range w.neighbors(cur) {
			if w.visited[next] {
				continue
			}
			w.visited[next] = true
			w.parent[next] = cur
			w.queue = append(w.queue, next)

			if next == goal {
				return w.reconstruct(start, goal), nil
			}
		}
	}
	return nil, ErrNoPath
}

// reconstruct walks the parent links backwards from goal and reverses the
// resulting state list.
func (w *walker) reconstruct(start, goal State) *Result {
	var path []State
	for cur := goal; ; cur = w.parent[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return &Result{Path: path, Length: len(path) - 1}
}

// canonical converts a block terminal (bx, by, dir, idx) into its canonical
// state: W collapses onto the east wall of the block to the left, S onto
// the north wall of the block below.
func canonical(bx, by int, dir maze.Direction, idx int) State {
	switch dir {
	case maze.DirE:
		return State{X: bx, Y: by, Axis: AxisE, Index: idx}
	case maze.DirW:
		return State{X: bx - 1, Y: by, Axis: AxisE, Index: idx}
	case maze.DirN:
		return State{X: bx, Y: by, Axis: AxisN, Index: idx}
	default: // maze.DirS
		return State{X: bx, Y: by - 1, Axis: AxisN, Index: idx}
	}
}

// inBox reports whether a canonical state lies inside the explored
// coordinate box.
func (w *walker) inBox(s State) bool {
	return s.X >= 0 && s.Y >= 0 && s.X <= w.maxCoord && s.Y <= w.maxCoord
}

// neighbors enumerates the states reachable from s through one open port.
// An east-wall point touches block (x,y) at its E terminal and block
// (x+1,y) at its W terminal; a north-wall point touches (x,y) at N and
// (x,y+1) at S. Blocks in the bx == 0 column are nx boundary blocks
// (E→E ports only), blocks in the by == 0 row are ny boundary blocks
// (N→N ports only); all others are normal blocks.
func (w *walker) neighbors(s State) []State {
	var out []State

	if s.Axis == AxisE {
		// Block (x, y), terminal E_idx.
		if s.Y > 0 {
			if s.X > 0 {
				out = w.appendNormal(out, s.X, s.Y, maze.DirE, s.Index)
			} else {
				out = w.appendEdge(out, s, maze.DirE)
			}
		}
		// Block (x+1, y), terminal W_idx.
		if s.X+1 > 0 && s.Y > 0 {
			out = w.appendNormal(out, s.X+1, s.Y, maze.DirW, s.Index)
		}
		return out
	}

	// Block (x, y), terminal N_idx.
	if s.X > 0 {
		if s.Y > 0 {
			out = w.appendNormal(out, s.X, s.Y, maze.DirN, s.Index)
		} else {
			out = w.appendEdge(out, s, maze.DirN)
		}
	}
	// Block (x, y+1), terminal S_idx.
	if s.X > 0 && s.Y+1 > 0 {
		out = w.appendNormal(out, s.X, s.Y+1, maze.DirS, s.Index)
	}
	return out
}

// appendNormal adds the canonical targets of all open normal-block ports
// leaving terminal (sd, si) of block (bx, by).
func (w *walker) appendNormal(out []State, bx, by int, sd maze.Direction, si int) []State {
	n := w.m.TermCount()
	for _, dd := range []maze.Direction{maze.DirE, maze.DirW, maze.DirN, maze.DirS} {
		for di := 0; di < n; di++ {
			if !w.m.NormalPort(sd, si, dd, di) {
				continue
			}
			ns := canonical(bx, by, dd, di)
			if w.inBox(ns) {
				out = append(out, ns)
			}
		}
	}
	return out
}

// appendEdge adds the targets of the boundary block touching s: the nx
// column for east-wall states, the ny row for north-wall states. Boundary
// ports stay on the same wall, only the terminal index changes.
func (w *walker) appendEdge(out []State, s State, dir maze.Direction) []State {
	n := w.m.TermCount()
	for di := 0; di < n; di++ {
		if di == s.Index {
			continue
		}
		open := false
		if dir == maze.DirE {
			open = w.m.NXPort(s.Index, di)
		} else {
			open = w.m.NYPort(s.Index, di)
		}
		if open {
			out = append(out, State{X: s.X, Y: s.Y, Axis: s.Axis, Index: di})
		}
	}
	return out
}
