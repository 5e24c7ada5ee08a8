// Package maze - parsing of the canonical maze description text.
package maze

import (
	"fmt"
	"strings"
)

// Parse builds a Maze with nterm terminals from its textual description:
//
//	normal: <ports>; nx: <ports>; ny: <ports>
//
// The nx and ny sections are optional; "(none)" marks an empty group.
// Whitespace around tokens is ignored and direction letters are
// case-insensitive. Within the nx/ny sections only the terminal indices are
// meaningful (the groups are east/north boundary matrices by definition).
//
// Returns ErrTermCount for nterm < 2, ErrParse for malformed text, and
// ErrPortRange for indices outside [0, nterm) or nx/ny self-edges.
// Complexity: O(len(s)).
func Parse(nterm int, s string) (*Maze, error) {
	m, err := New(nterm)
	if err != nil {
		return nil, err
	}

	p := &scanner{src: s}
	if !p.literal("normal:") {
		return nil, fmt.Errorf("%w: missing %q section", ErrParse, "normal")
	}
	if err = p.section(func(port Port) error {
		return m.SetNormalPort(port.FromDir, port.FromIndex, port.ToDir, port.ToIndex, true)
	}); err != nil {
		return nil, err
	}

	if p.literal(";") {
		if !p.literal("nx:") {
			return nil, fmt.Errorf("%w: expected %q section", ErrParse, "nx")
		}
		if err = p.section(func(port Port) error {
			return m.SetNXPort(port.FromIndex, port.ToIndex, true)
		}); err != nil {
			return nil, err
		}
	}

	if p.literal(";") {
		if !p.literal("ny:") {
			return nil, fmt.Errorf("%w: expected %q section", ErrParse, "ny")
		}
		if err = p.section(func(port Port) error {
			return m.SetNYPort(port.FromIndex, port.ToIndex, true)
		}); err != nil {
			return nil, err
		}
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: trailing input at offset %d", ErrParse, p.pos)
	}
	return m, nil
}

// scanner is a minimal cursor over the description text.
type scanner struct {
	src string
	pos int
}

// skipSpace advances past any whitespace.
func (p *scanner) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

// literal consumes lit (after optional whitespace) and reports success.
// On failure the cursor is left untouched.
func (p *scanner) literal(lit string) bool {
	save := p.pos
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	p.pos = save
	return false
}

// atSectionEnd reports whether the cursor sits at a ';' or the end of input.
func (p *scanner) atSectionEnd() bool {
	p.skipSpace()
	return p.pos >= len(p.src) || p.src[p.pos] == ';'
}

// terminal parses one "<Dir><Index>" token.
func (p *scanner) terminal() (Direction, int, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, 0, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	dir, err := ParseDirection(p.src[p.pos])
	if err != nil {
		return 0, 0, fmt.Errorf("%w at offset %d", err, p.pos)
	}
	p.pos++
	start := p.pos
	idx := 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		idx = idx*10 + int(p.src[p.pos]-'0')
		p.pos++
	}
	if p.pos == start {
		return 0, 0, fmt.Errorf("%w: missing terminal index at offset %d", ErrParse, p.pos)
	}
	return dir, idx, nil
}

// port parses one "<terminal>-><terminal>" token.
func (p *scanner) port() (Port, error) {
	var port Port
	var err error
	if port.FromDir, port.FromIndex, err = p.terminal(); err != nil {
		return port, err
	}
	if !p.literal("->") {
		return port, fmt.Errorf("%w: expected \"->\" at offset %d", ErrParse, p.pos)
	}
	if port.ToDir, port.ToIndex, err = p.terminal(); err != nil {
		return port, err
	}
	return port, nil
}

// section parses one comma-separated port list (or the "(none)" marker) and
// feeds each port to set.
func (p *scanner) section(set func(Port) error) error {
	if p.literal(noneMarker) {
		return nil
	}
	for {
		if p.atSectionEnd() {
			return nil
		}
		port, err := p.port()
		if err != nil {
			return err
		}
		if err = set(port); err != nil {
			return err
		}
		if !p.literal(",") {
			if !p.atSectionEnd() {
				return fmt.Errorf("%w: expected \",\" or \";\" at offset %d", ErrParse, p.pos)
			}
			return nil
		}
	}
}
