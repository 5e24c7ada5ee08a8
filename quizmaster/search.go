// Package quizmaster - the hill-climbing search loop.
package quizmaster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/solver"
)

// Search hill-climbs toward a maze on nterm terminals with the longest
// shortest walk it can find, applying any number of functional Options.
//
// One iteration flips a single uniformly chosen port, re-solves, keeps the
// flip only on strict improvement, and reverts otherwise. After
// RestartThreshold stagnant iterations the maze is re-randomized. The best
// maze ever observed is cloned together with its full walk.
//
// Returns maze.ErrTermCount for nterm < 2, ErrOptionViolation for bad
// options, and ErrNoPathFound when no examined maze reached the goal.
// Complexity: O(MaxIterations × solve cost); strictly sequential.
func Search(nterm int, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m, err := maze.New(nterm)
	if err != nil {
		return nil, err
	}

	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	m.Randomize(rng)
	curLen, err := walkLength(m, o.MaxCoord)
	if err != nil {
		return nil, err
	}

	var best *maze.Maze
	bestLen := 0
	stagnation := 0

	for iter := 0; iter < o.MaxIterations; iter++ {
		bit := rng.Intn(m.TotalPorts())
		if err = m.FlipPort(bit); err != nil {
			return nil, err
		}

		newLen, err := walkLength(m, o.MaxCoord)
		if err != nil {
			return nil, err
		}

		if newLen > curLen {
			curLen = newLen
			stagnation = 0
		} else {
			// Revert the flip.
			if err = m.FlipPort(bit); err != nil {
				return nil, err
			}
			stagnation++
		}

		if curLen > bestLen {
			bestLen = curLen
			best = m.Clone()
			logger.Info("new best maze",
				slog.Int("iter", iter),
				slog.Int("length", bestLen),
				slog.String("maze", best.String()))
		}

		if (iter+1)%o.ReportInterval == 0 {
			logger.Info("search progress",
				slog.Int("iter", iter+1),
				slog.Int("best", bestLen),
				slog.Int("current", curLen),
				slog.Int("stagnation", stagnation))
		}

		if stagnation >= o.RestartThreshold {
			m.Randomize(rng)
			if curLen, err = walkLength(m, o.MaxCoord); err != nil {
				return nil, err
			}
			stagnation = 0
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: nterm=%d after %d iterations", ErrNoPathFound, nterm, o.MaxIterations)
	}

	res, err := solver.Solve(best, solver.WithMaxCoord(o.MaxCoord))
	if err != nil {
		return nil, fmt.Errorf("quizmaster: re-solving best maze: %w", err)
	}
	return &Outcome{Best: best, Length: res.Length, Path: res.Path}, nil
}

// walkLength scores a maze by its shortest-walk length; an unreachable goal
// scores 0.
func walkLength(m *maze.Maze, maxCoord int) (int, error) {
	res, err := solver.Solve(m, solver.WithMaxCoord(maxCoord))
	if errors.Is(err, solver.ErrNoPath) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return res.Length, nil
}
