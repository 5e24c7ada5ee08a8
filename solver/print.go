// Package solver - textual renderings of a solved walk.
package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/repmaze/maze"
)

// PathString renders the walk as arrow-joined canonical states:
//
//	(0,1,E0) -> (1,1,N2) -> … -> (0,1,E1)
//
// Complexity: O(len(Path)).
func (r *Result) PathString() string {
	tokens := make([]string, len(r.Path))
	for i, s := range r.Path {
		tokens[i] = s.String()
	}
	return strings.Join(tokens, " -> ")
}

// GridString renders the walk as a coordinate grid with the step numbers
// visiting each position, highest y row first. Positions never visited
// show ".".
// Complexity: O(area × len(Path)).
func (r *Result) GridString() string {
	if len(r.Path) == 0 {
		return ""
	}

	minX, maxX := r.Path[0].X, r.Path[0].X
	minY, maxY := r.Path[0].Y, r.Path[0].Y
	for _, s := range r.Path[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X > maxX {
			maxX = s.X
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y > maxY {
			maxY = s.Y
		}
	}

	cols := maxX - minX + 1
	rows := maxY - minY + 1

	// Cell contents: comma-joined step numbers per coordinate.
	cells := make([]string, rows*cols)
	colWidth := make([]int, cols)
	for c := range colWidth {
		colWidth[c] = 4
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var steps []string
			for i, s := range r.Path {
				if s.X == x && s.Y == y {
					steps = append(steps, fmt.Sprintf("%d", i))
				}
			}
			cell := "."
			if len(steps) > 0 {
				cell = strings.Join(steps, ",")
			}
			c := x - minX
			cells[(y-minY)*cols+c] = cell
			if len(cell)+2 > colWidth[c] {
				colWidth[c] = len(cell) + 2
			}
		}
	}

	var b strings.Builder
	b.WriteString("Grid (step numbers at each position):\n")
	b.WriteString("y\\x  ")
	for x := minX; x <= maxX; x++ {
		fmt.Fprintf(&b, "%-*d", colWidth[x-minX], x)
	}
	b.WriteByte('\n')
	for y := maxY; y >= minY; y-- {
		fmt.Fprintf(&b, "%-4d ", y)
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%-*s", colWidth[c], cells[(y-minY)*cols+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// blockTerm is one (block, terminal) incidence of a canonical state.
type blockTerm struct {
	bx, by int
	dir    maze.Direction
	idx    int
}

// incidences lists the one or two block terminals a canonical state touches.
func incidences(s State) []blockTerm {
	if s.Axis == AxisE {
		return []blockTerm{
			{s.X, s.Y, maze.DirE, s.Index},
			{s.X + 1, s.Y, maze.DirW, s.Index},
		}
	}
	return []blockTerm{
		{s.X, s.Y, maze.DirN, s.Index},
		{s.X, s.Y + 1, maze.DirS, s.Index},
	}
}

// AnnotatedString renders the walk with one line per step, naming the port
// and block that carried the transition:
//
//	#0   (0,1,E0) --[W0->N2 @ normal(1,1)]--> (1,1,N2)
//
// Steps whose transition cannot be matched to an open port (possible only
// if m differs from the solved maze) fall back to a bare arrow with a
// "[transition unknown]" tag.
// Complexity: O(len(Path)).
func (r *Result) AnnotatedString(m *maze.Maze) string {
	if len(r.Path) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Path details (%d steps):\n", len(r.Path)-1)

	for step := 0; step+1 < len(r.Path); step++ {
		s1, s2 := r.Path[step], r.Path[step+1]

		found := false
		for _, src := range incidences(s1) {
			for _, dst := range incidences(s2) {
				if src.bx != dst.bx || src.by != dst.by {
					continue
				}
				kind, open := portBetween(m, src, dst)
				if !open {
					continue
				}
				fmt.Fprintf(&b, "  #%-3d %s --[%s%d->%s%d @ %s(%d,%d)]--> %s\n",
					step, s1,
					src.dir, src.idx, dst.dir, dst.idx,
					kind, src.bx, src.by,
					s2)
				found = true
				break
			}
			if found {
				break
			}
		}
		if !found {
			fmt.Fprintf(&b, "  #%-3d %s --> %s  [transition unknown]\n", step, s1, s2)
		}
	}
	return b.String()
}

// portBetween classifies the block shared by src and dst and reports
// whether the corresponding port is open.
func portBetween(m *maze.Maze, src, dst blockTerm) (string, bool) {
	switch {
	case src.bx > 0 && src.by > 0:
		return "normal", m.NormalPort(src.dir, src.idx, dst.dir, dst.idx)
	case src.bx == 0 && src.by > 0:
		if src.dir == maze.DirE && dst.dir == maze.DirE && src.idx != dst.idx {
			return "nx", m.NXPort(src.idx, dst.idx)
		}
		return "nx", false
	case src.bx > 0 && src.by == 0:
		if src.dir == maze.DirN && dst.dir == maze.DirN && src.idx != dst.idx {
			return "ny", m.NYPort(src.idx, dst.idx)
		}
		return "ny", false
	default:
		return "", false
	}
}
