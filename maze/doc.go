// Package maze models a repeated-block port maze: an infinite quarter-plane
// of identical blocks whose inter-terminal connections are described by
// three boolean port matrices.
//
// What:
//
//   - Maze stores the "normal" block port matrix ((4·n)² entries) plus the
//     boundary "nx" and "ny" edge matrices (n·(n−1) entries each, no
//     self-edges) for n terminals per block side.
//   - Ports can be read and written by typed coordinates (direction + index)
//     or by a flat index spanning all three groups, which is what random
//     search mutates.
//   - Parse and String round-trip the canonical textual form
//     "normal: …; nx: …; ny: …".
//
// Why:
//
//   - Minsky-machine encodings: one maze description drives arbitrarily many
//     repeated blocks, so a fixed-size object captures an unbounded maze.
//   - Search: Randomize plus FlipPort give stochastic optimizers a compact,
//     invertible mutation surface.
//
// Complexity:
//
//   - Port accessors: O(1).
//   - Clone, Randomize, String, Parse: O(n²) in the number of ports.
//
// Errors:
//
//   - ErrTermCount: terminal count below the minimum of 2.
//   - ErrPortRange: port coordinates out of range, or an nx/ny self-edge.
//   - ErrParse: malformed maze description text.
package maze
