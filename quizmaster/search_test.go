package quizmaster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/quizmaster"
	"github.com/katalvlaran/repmaze/solver"
)

// TestSearch_TermCountError verifies that the minimum terminal count is
// enforced before any work happens.
func TestSearch_TermCountError(t *testing.T) {
	_, err := quizmaster.Search(1)
	assert.ErrorIs(t, err, maze.ErrTermCount)
}

// TestSearch_BadOptions verifies that invalid options surface as
// ErrOptionViolation.
func TestSearch_BadOptions(t *testing.T) {
	_, err := quizmaster.Search(2, quizmaster.WithMaxIterations(-1))
	assert.ErrorIs(t, err, quizmaster.ErrOptionViolation)

	_, err = quizmaster.Search(2, quizmaster.WithMaxCoord(0))
	assert.ErrorIs(t, err, quizmaster.ErrOptionViolation)

	_, err = quizmaster.Search(2, quizmaster.WithRestartThreshold(0))
	assert.ErrorIs(t, err, quizmaster.ErrOptionViolation)

	_, err = quizmaster.Search(2, quizmaster.WithReportInterval(0))
	assert.ErrorIs(t, err, quizmaster.ErrOptionViolation)
}

// TestSearch_ZeroIterations verifies that an empty hill climb records no
// best maze.
func TestSearch_ZeroIterations(t *testing.T) {
	_, err := quizmaster.Search(2, quizmaster.WithMaxIterations(0))
	assert.ErrorIs(t, err, quizmaster.ErrNoPathFound)
}

// TestSearch_FindsWalk verifies that a short hill climb on the smallest
// maze finds a maze with a reachable goal and returns a consistent outcome.
func TestSearch_FindsWalk(t *testing.T) {
	out, err := quizmaster.Search(2,
		quizmaster.WithSeed(7),
		quizmaster.WithMaxIterations(2000),
		quizmaster.WithMaxCoord(10),
	)
	require.NoError(t, err)
	require.NotNil(t, out.Best)
	assert.GreaterOrEqual(t, out.Length, 1, "a found walk has at least one traversal")
	assert.Len(t, out.Path, out.Length+1, "path lists one state per traversal plus the start")

	startState := solver.State{X: 0, Y: 1, Axis: solver.AxisE, Index: 0}
	goalState := solver.State{X: 0, Y: 1, Axis: solver.AxisE, Index: 1}
	assert.Equal(t, startState, out.Path[0])
	assert.Equal(t, goalState, out.Path[len(out.Path)-1])
}

// TestSearch_OutcomeMatchesSolver verifies that the reported length is the
// actual shortest walk of the returned maze.
func TestSearch_OutcomeMatchesSolver(t *testing.T) {
	out, err := quizmaster.Search(2,
		quizmaster.WithSeed(7),
		quizmaster.WithMaxIterations(2000),
		quizmaster.WithMaxCoord(10),
	)
	require.NoError(t, err)

	res, err := solver.Solve(out.Best, solver.WithMaxCoord(10))
	require.NoError(t, err)
	assert.Equal(t, out.Length, res.Length)
}

// TestSearch_Deterministic verifies the same-seed ⇒ same-outcome guarantee.
func TestSearch_Deterministic(t *testing.T) {
	run := func() *quizmaster.Outcome {
		out, err := quizmaster.Search(2,
			quizmaster.WithSeed(11),
			quizmaster.WithMaxIterations(1500),
			quizmaster.WithMaxCoord(8),
		)
		require.NoError(t, err)
		return out
	}

	a, b := run(), run()
	assert.Equal(t, a.Length, b.Length)
	assert.Equal(t, a.Best.String(), b.Best.String())
	assert.Equal(t, a.Path, b.Path)
}
