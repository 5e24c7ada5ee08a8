// Package maze - construction, port accessors and bulk operations.
package maze

import (
	"fmt"
	"math/rand"
)

// New constructs an empty Maze with nterm terminals per block side.
// Returns ErrTermCount if nterm < 2 (a solvable maze needs separate
// start and goal terminals).
// Complexity: O(nterm²) time and memory.
func New(nterm int) (*Maze, error) {
	if nterm < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTermCount, nterm)
	}
	n4 := numDirections * nterm
	return &Maze{
		nterm:  nterm,
		normal: make([]bool, n4*n4),
		nx:     make([]bool, nterm*(nterm-1)),
		ny:     make([]bool, nterm*(nterm-1)),
	}, nil
}

// Clone returns a deep copy of m.
// Complexity: O(nterm²).
func (m *Maze) Clone() *Maze {
	c := &Maze{
		nterm:  m.nterm,
		normal: make([]bool, len(m.normal)),
		nx:     make([]bool, len(m.nx)),
		ny:     make([]bool, len(m.ny)),
	}
	copy(c.normal, m.normal)
	copy(c.nx, m.nx)
	copy(c.ny, m.ny)
	return c
}

// normalIndex maps a (fromDir, fromIdx, toDir, toIdx) quadruple into the
// flat normal matrix. Callers must have validated the coordinates.
func (m *Maze) normalIndex(sd Direction, si int, dd Direction, di int) int {
	n4 := numDirections * m.nterm
	src := int(sd)*m.nterm + si
	dst := int(dd)*m.nterm + di
	return src*n4 + dst
}

// edgeIndex maps an (fromIdx, toIdx) pair with fromIdx != toIdx into a
// boundary matrix with the self-edge diagonal removed.
func (m *Maze) edgeIndex(si, di int) int {
	adj := di
	if di > si {
		adj = di - 1
	}
	return si*(m.nterm-1) + adj
}

// validDir reports whether d is one of the four terminal directions.
func validDir(d Direction) bool { return d >= 0 && d < numDirections }

// validIdx reports whether i is a valid terminal index for m.
func (m *Maze) validIdx(i int) bool { return i >= 0 && i < m.nterm }

// NormalPort reports whether the normal-block port sd/si → dd/di is open.
// Out-of-range coordinates read as closed.
// Complexity: O(1).
func (m *Maze) NormalPort(sd Direction, si int, dd Direction, di int) bool {
	if !validDir(sd) || !validDir(dd) || !m.validIdx(si) || !m.validIdx(di) {
		return false
	}
	return m.normal[m.normalIndex(sd, si, dd, di)]
}

// SetNormalPort opens or closes the normal-block port sd/si → dd/di.
// Returns ErrPortRange for invalid coordinates.
// Complexity: O(1).
func (m *Maze) SetNormalPort(sd Direction, si int, dd Direction, di int, open bool) error {
	if !validDir(sd) || !validDir(dd) || !m.validIdx(si) || !m.validIdx(di) {
		return fmt.Errorf("%w: normal %v%d->%v%d (nterm=%d)", ErrPortRange, sd, si, dd, di, m.nterm)
	}
	m.normal[m.normalIndex(sd, si, dd, di)] = open
	return nil
}

// NXPort reports whether the east-boundary port E_si → E_di is open.
// Out-of-range coordinates and self-edges read as closed.
// Complexity: O(1).
func (m *Maze) NXPort(si, di int) bool {
	if !m.validIdx(si) || !m.validIdx(di) || si == di {
		return false
	}
	return m.nx[m.edgeIndex(si, di)]
}

// SetNXPort opens or closes the east-boundary port E_si → E_di.
// Returns ErrPortRange for invalid coordinates or si == di.
// Complexity: O(1).
func (m *Maze) SetNXPort(si, di int, open bool) error {
	if !m.validIdx(si) || !m.validIdx(di) || si == di {
		return fmt.Errorf("%w: nx E%d->E%d (nterm=%d)", ErrPortRange, si, di, m.nterm)
	}
	m.nx[m.edgeIndex(si, di)] = open
	return nil
}

// NYPort reports whether the north-boundary port N_si → N_di is open.
// Out-of-range coordinates and self-edges read as closed.
// Complexity: O(1).
func (m *Maze) NYPort(si, di int) bool {
	if !m.validIdx(si) || !m.validIdx(di) || si == di {
		return false
	}
	return m.ny[m.edgeIndex(si, di)]
}

// SetNYPort opens or closes the north-boundary port N_si → N_di.
// Returns ErrPortRange for invalid coordinates or si == di.
// Complexity: O(1).
func (m *Maze) SetNYPort(si, di int, open bool) error {
	if !m.validIdx(si) || !m.validIdx(di) || si == di {
		return fmt.Errorf("%w: ny N%d->N%d (nterm=%d)", ErrPortRange, si, di, m.nterm)
	}
	m.ny[m.edgeIndex(si, di)] = open
	return nil
}

// Port reads the port slot at flat index idx. Flat indices cover the normal
// matrix first, then nx, then ny. Returns ErrPortRange for idx outside
// [0, TotalPorts).
// Complexity: O(1).
func (m *Maze) Port(idx int) (bool, error) {
	if idx < 0 || idx >= m.TotalPorts() {
		return false, fmt.Errorf("%w: flat index %d of %d", ErrPortRange, idx, m.TotalPorts())
	}
	if idx < len(m.normal) {
		return m.normal[idx], nil
	}
	idx -= len(m.normal)
	if idx < len(m.nx) {
		return m.nx[idx], nil
	}
	return m.ny[idx-len(m.nx)], nil
}

// SetPort writes the port slot at flat index idx.
// Complexity: O(1).
func (m *Maze) SetPort(idx int, open bool) error {
	if idx < 0 || idx >= m.TotalPorts() {
		return fmt.Errorf("%w: flat index %d of %d", ErrPortRange, idx, m.TotalPorts())
	}
	if idx < len(m.normal) {
		m.normal[idx] = open
		return nil
	}
	idx -= len(m.normal)
	if idx < len(m.nx) {
		m.nx[idx] = open
		return nil
	}
	m.ny[idx-len(m.nx)] = open
	return nil
}

// FlipPort toggles the port slot at flat index idx. This is the elementary
// mutation used by stochastic search.
// Complexity: O(1).
func (m *Maze) FlipPort(idx int) error {
	open, err := m.Port(idx)
	if err != nil {
		return err
	}
	return m.SetPort(idx, !open)
}

// Randomize assigns every port slot an independent fair coin flip drawn from
// rng. A nil rng falls back to a fixed-seed deterministic stream, keeping
// the same-seed ⇒ same-maze guarantee everywhere.
// Complexity: O(nterm²).
func (m *Maze) Randomize(rng *rand.Rand) {
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	for i := range m.normal {
		m.normal[i] = r.Intn(2) == 1
	}
	for i := range m.nx {
		m.nx[i] = r.Intn(2) == 1
	}
	for i := range m.ny {
		m.ny[i] = r.Intn(2) == 1
	}
}

// NormalPorts lists the open normal-block ports in table order
// (by fromDir, fromIdx, toDir, toIdx ascending).
// Complexity: O(nterm²).
func (m *Maze) NormalPorts() []Port {
	var out []Port
	for sd := Direction(0); sd < numDirections; sd++ {
		for si := 0; si < m.nterm; si++ {
			for dd := Direction(0); dd < numDirections; dd++ {
				for di := 0; di < m.nterm; di++ {
					if m.normal[m.normalIndex(sd, si, dd, di)] {
						out = append(out, Port{sd, si, dd, di})
					}
				}
			}
		}
	}
	return out
}

// NXPorts lists the open east-boundary ports in table order.
// Complexity: O(nterm²).
func (m *Maze) NXPorts() []Port {
	return m.edgePorts(m.nx, DirE)
}

// NYPorts lists the open north-boundary ports in table order.
// Complexity: O(nterm²).
func (m *Maze) NYPorts() []Port {
	return m.edgePorts(m.ny, DirN)
}

// edgePorts lists the open entries of one boundary matrix as Ports on dir.
func (m *Maze) edgePorts(group []bool, dir Direction) []Port {
	var out []Port
	for si := 0; si < m.nterm; si++ {
		for di := 0; di < m.nterm; di++ {
			if di != si && group[m.edgeIndex(si, di)] {
				out = append(out, Port{dir, si, dir, di})
			}
		}
	}
	return out
}
