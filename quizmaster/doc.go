// Package quizmaster searches for repeated-block mazes whose shortest walk
// is as long as possible, by randomized hill climbing over port flips.
//
// What:
//
//   - Search starts from a uniformly random maze, flips one random port per
//     iteration, keeps the flip only on strict improvement of the BFS walk
//     length, and restarts from a fresh random maze after a stagnation
//     streak. The best maze ever seen is cloned and returned with its walk.
//
// Why:
//
//   - The doubling-machine construction proves long walks exist on few
//     terminals; the quizmaster probes how close blind local search gets.
//
// Determinism:
//
//   - All randomness flows from the Seed option (same seed ⇒ same outcome);
//     seed 0 selects a fixed default. No time-based sources anywhere.
//
// Concurrency:
//
//   - Search is strictly sequential; each iteration depends on the last.
//
// Options:
//
//   - WithSeed, WithMaxIterations, WithMaxCoord, WithRestartThreshold,
//     WithReportInterval, WithLogger.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoPathFound: no examined maze had a reachable goal.
//   - maze.ErrTermCount: terminal count below 2.
package quizmaster
