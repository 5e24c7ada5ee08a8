// Package quizmaster defines options, outcomes, and sentinel errors for the
// randomized maze search.
package quizmaster

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/solver"
)

// Sentinel errors for Search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quizmaster: invalid option supplied")
	// ErrNoPathFound is returned when no examined maze had a walk from
	// start to goal.
	ErrNoPathFound = errors.New("quizmaster: no maze with a reachable goal found")
)

// Reference defaults, matching the CLI's historical behavior.
const (
	// defaultSeed replaces a zero seed so that the default run is
	// reproducible rather than degenerate.
	defaultSeed int64 = 42
	// defaultMaxIterations bounds the hill climb.
	defaultMaxIterations = 1_000_000
	// defaultMaxCoord bounds the solver's coordinate box.
	defaultMaxCoord = 1000
	// defaultRestartThreshold is the stagnation streak that triggers a
	// random restart.
	defaultRestartThreshold = 1000
	// defaultReportInterval is the iteration period of progress logging.
	defaultReportInterval = 10000
)

// Option configures Search via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds the tunable parameters of a search run.
type Options struct {
	// Seed drives all randomness; 0 selects the fixed default seed.
	Seed int64
	// MaxIterations is the number of flip attempts.
	MaxIterations int
	// MaxCoord bounds the solver's coordinate box.
	MaxCoord int
	// RestartThreshold is the stagnation streak forcing a random restart.
	RestartThreshold int
	// ReportInterval is the iteration period of progress logging.
	ReportInterval int
	// Logger receives new-best and progress events; nil discards them.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the reference defaults.
func DefaultOptions() Options {
	return Options{
		Seed:             0,
		MaxIterations:    defaultMaxIterations,
		MaxCoord:         defaultMaxCoord,
		RestartThreshold: defaultRestartThreshold,
		ReportInterval:   defaultReportInterval,
	}
}

// WithSeed fixes the RNG seed; 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxIterations sets the number of flip attempts.
// n < 0 → ErrOptionViolation; 0 is allowed and always yields ErrNoPathFound
// (the best maze is only recorded inside the iteration loop).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithMaxCoord bounds the solver's coordinate box to [0, n]².
// n < 1 → ErrOptionViolation.
func WithMaxCoord(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCoord must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCoord = n
	}
}

// WithRestartThreshold sets the stagnation streak that triggers a restart.
// n < 1 → ErrOptionViolation.
func WithRestartThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: RestartThreshold must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.RestartThreshold = n
	}
}

// WithReportInterval sets the iteration period of progress logging.
// n < 1 → ErrOptionViolation.
func WithReportInterval(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: ReportInterval must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ReportInterval = n
	}
}

// WithLogger routes new-best and progress events to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// Outcome is the result of a search run.
type Outcome struct {
	// Best is the highest-scoring maze found (a private clone).
	Best *maze.Maze
	// Length is Best's shortest-walk length in port traversals.
	Length int
	// Path is the full walk through Best, start to goal inclusive.
	Path []solver.State
}
