// Package repmaze is a toolkit for building, solving and analyzing
// repeated-block port mazes — in particular the Minsky ×2 doubling
// machine encoding and its polynomial "counter pump" baseline.
//
// 🚀 What is repmaze?
//
//	A small, deterministic analysis library plus CLI that brings together:
//		• Closed forms: exact path lengths for k-fold ×2 doubling machines
//		• Layout generation: the canonical maze string for any cycle count
//		• Maze model: normal/nx/ny port matrices with parse & print
//		• Solver: canonical-state BFS with full path reconstruction
//		• Quizmaster: stochastic hill-climb search for long-path mazes
//
// ✨ Why choose repmaze?
//
//   - Reproducible – every computation is a pure function of its inputs;
//     all randomness flows from explicit seeds
//   - Verified – the analytic path lengths are cross-checked against the
//     BFS solver on generated mazes in the test suite
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	minsky/     — recurrences, closed forms, layout generation & reporting
//	maze/       — port-matrix maze model, parser and printers
//	solver/     — canonical-state BFS walker over a maze
//	quizmaster/ — randomized search for mazes with long shortest paths
//
// Quick ASCII example:
//
//	    ny  ny  ny
//	    ┌───┬───┐
//	 nx │   │   │   a walker enters at W0, threads the doubling
//	    ├───┼───┤   cycles, and exits at W1 — the goal terminal.
//	 nx │   │   │
//	    └───┴───┘
//
// Dive into cmd/repmaze for the report/solve/search command line.
//
//	go get github.com/katalvlaran/repmaze
package repmaze
