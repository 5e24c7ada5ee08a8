// Package maze - textual serialization of a Maze.
package maze

import (
	"fmt"
	"strings"
)

// noneMarker is emitted for (and accepted as) an empty port group.
const noneMarker = "(none)"

// joinPorts renders a port list as ", "-separated tokens, or the
// empty-group marker.
func joinPorts(ports []Port) string {
	if len(ports) == 0 {
		return noneMarker
	}
	tokens := make([]string, len(ports))
	for i, p := range ports {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, ", ")
}

// String renders the maze in its canonical form
//
//	normal: <ports>; nx: <ports>; ny: <ports>
//
// with each group in table order and "(none)" for empty groups.
// Parse inverts this exactly.
// Complexity: O(nterm²).
func (m *Maze) String() string {
	var b strings.Builder
	b.WriteString("normal: ")
	b.WriteString(joinPorts(m.NormalPorts()))
	b.WriteString("; nx: ")
	b.WriteString(joinPorts(m.NXPorts()))
	b.WriteString("; ny: ")
	b.WriteString(joinPorts(m.NYPorts()))
	return b.String()
}

// Table renders a human-readable dump: the full normal port matrix as a
// '*'/'.' grid followed by the open nx and ny boundary ports. Intended for
// debugging; the layout is informational, not a parse format.
// Complexity: O(nterm⁴) output size.
func (m *Maze) Table() string {
	var b strings.Builder
	n := m.nterm

	fmt.Fprintf(&b, "Normal block port table (%d terminals):\n", numDirections*n)
	b.WriteString("      ")
	for dd := Direction(0); dd < numDirections; dd++ {
		for di := 0; di < n; di++ {
			fmt.Fprintf(&b, " %s%-2d", dd, di)
		}
	}
	b.WriteByte('\n')
	for sd := Direction(0); sd < numDirections; sd++ {
		for si := 0; si < n; si++ {
			fmt.Fprintf(&b, "  %s%-2d ", sd, si)
			for dd := Direction(0); dd < numDirections; dd++ {
				for di := 0; di < n; di++ {
					mark := '.'
					if m.normal[m.normalIndex(sd, si, dd, di)] {
						mark = '*'
					}
					fmt.Fprintf(&b, "  %c ", mark)
				}
			}
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "nx block ports: %s\n", joinPorts(m.NXPorts()))
	fmt.Fprintf(&b, "ny block ports: %s\n", joinPorts(m.NYPorts()))
	return b.String()
}
