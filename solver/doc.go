// Package solver runs breadth-first search over the repeated-block plane of
// a maze.Maze, returning the shortest walk from the start terminal to the
// goal terminal.
//
// What:
//
//   - Each physical point of the plane is a canonical State (x, y, axis,
//     index): east/west terminal pairs collapse onto the east wall of a
//     block, north/south pairs onto the north wall.
//   - Solve explores states in increasing distance from the start
//     (0,1,E,0) until it reaches the goal (0,1,E,1), then reconstructs the
//     walk through parent links.
//   - Result carries the full state path plus formatting helpers: a plain
//     arrow-joined listing, a step-number grid, and a per-step annotation
//     naming the port and block behind every transition.
//
// Why:
//
//   - Verification: the analytic walk lengths of the minsky package are
//     cross-checked against actual BFS walks on generated mazes.
//   - Search: quizmaster scores candidate mazes by their shortest walk.
//
// Complexity:
//
//   - Solve: O(S·n) time for S reachable states on n terminals,
//     Memory: O(S). S is bounded by the MaxCoord option: the walker never
//     leaves the [0, MaxCoord]² coordinate box.
//
// Options:
//
//   - WithMaxCoord: coordinate bound of the explored box (default 1000).
//
// Errors:
//
//   - ErrMazeNil: nil maze passed to Solve.
//   - ErrNoPath: the goal is unreachable within the coordinate box.
//   - ErrOptionViolation: an invalid Option was supplied.
package solver
