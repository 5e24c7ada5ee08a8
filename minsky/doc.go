// Package minsky analyzes the maze encoding of a Minsky counter machine
// that doubles a counter k times, and compares its exact walk length with
// the polynomial "counter pump" construction.
//
// What:
//
//   - PathLength evaluates the doubling recurrence y_0 = 1,
//     y_{i} = 1 + 2·y_{i−1} and sums the exact per-cycle segment costs,
//     giving the walk length of the k-fold doubling machine.
//   - TermCount gives the number of maze terminal indices the k-cycle
//     layout allocates.
//   - CounterPumpLength is the closed-form cubic length of the
//     polynomial-growth baseline maze on n terminals.
//   - Layout deterministically produces the port layout (and maze string)
//     of the k-cycle doubling machine, and can materialize it into a
//     solvable maze.Maze.
//   - Crossover finds the smallest k whose doubling-machine walk exceeds
//     the counter pump baseline; WriteReport prints the full comparison
//     table.
//
// Why:
//
//   - Growth-rate separation: the doubling machine walks Θ(2^k) ports on
//     Θ(k) terminals while the counter pump walks Θ(n³) — the crossover
//     point makes the exponential/polynomial gap concrete.
//   - Construction: the generated maze strings are valid inputs for the
//     solver and for external maze tooling.
//
// Complexity:
//
//   - PathLength, TermCount, Layout: O(k) time and memory.
//   - CounterPumpLength: O(1).
//   - Crossover: O(maxK²) arithmetic steps; WriteReport: O(maxK) rows.
//
// Errors:
//
//   - ErrNegativeCycles: k < 0 passed to PathLength.
//   - ErrNonPositiveCycles: k < 1 passed to TermCount, Layout or Crossover.
//   - ErrNoCrossover: no crossover within the inspected range.
//
// All arithmetic is int64; values are exact for every k ≤ 61
// (y_k = 2^{k+1} − 1 stays below 2⁶³), far beyond the reporting range.
package minsky
