package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/solver"
)

// mazeK1 is the single-cycle doubling-machine maze; its shortest walk has
// exactly 22 port traversals.
const mazeK1 = "normal: W0->N2, N2->E3, W3->E4, W4->N5, N5->S2, " +
	"S7->E8, E8->W9, E9->N10, S10->E8, W11->N12, N12->S12, S13->E14, E14->W1; " +
	"nx: E9->E11; " +
	"ny: N2->N7, N12->N13"

var (
	start = solver.State{X: 0, Y: 1, Axis: solver.AxisE, Index: 0}
	goal  = solver.State{X: 0, Y: 1, Axis: solver.AxisE, Index: 1}
)

// TestSolve_NilMaze verifies the nil-pointer guard.
func TestSolve_NilMaze(t *testing.T) {
	_, err := solver.Solve(nil)
	assert.ErrorIs(t, err, solver.ErrMazeNil)
}

// TestSolve_BadOption verifies that an invalid coordinate bound surfaces as
// ErrOptionViolation.
func TestSolve_BadOption(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	_, err = solver.Solve(m, solver.WithMaxCoord(0))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestSolve_EmptyMaze verifies that a maze with no open ports has no walk.
func TestSolve_EmptyMaze(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)

	_, err = solver.Solve(m)
	assert.ErrorIs(t, err, solver.ErrNoPath)
}

// TestSolve_NXShortcut verifies the one-step walk through the nx boundary
// block: the start point sits on the bx == 0 column, so an open E0→E1
// boundary port connects start to goal directly.
func TestSolve_NXShortcut(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetNXPort(0, 1, true))

	res, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, []solver.State{start, goal}, res.Path)
}

// TestSolve_NormalHop verifies the one-step walk through the first normal
// block: its W0→W1 port joins the same two east-wall points.
func TestSolve_NormalHop(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetNormalPort(maze.DirW, 0, maze.DirW, 1, true))

	res, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length)
	assert.Equal(t, []solver.State{start, goal}, res.Path)
}

// TestSolve_ReferenceMaze verifies the full doubling-machine walk: exactly
// 22 traversals from start to goal.
func TestSolve_ReferenceMaze(t *testing.T) {
	m, err := maze.Parse(15, mazeK1)
	require.NoError(t, err)

	res, err := solver.Solve(m, solver.WithMaxCoord(50))
	require.NoError(t, err)
	assert.Equal(t, 22, res.Length)
	assert.Len(t, res.Path, 23)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
}

// TestSolve_MaxCoordBlocks verifies that a coordinate box too small for the
// machine's excursion yields ErrNoPath: the doubling walk must climb past
// y = 1.
func TestSolve_MaxCoordBlocks(t *testing.T) {
	m, err := maze.Parse(15, mazeK1)
	require.NoError(t, err)

	_, err = solver.Solve(m, solver.WithMaxCoord(1))
	assert.ErrorIs(t, err, solver.ErrNoPath)
}

// TestState_String verifies the canonical state rendering.
func TestState_String(t *testing.T) {
	assert.Equal(t, "(0,1,E0)", start.String())
	assert.Equal(t, "(3,0,N7)", solver.State{X: 3, Y: 0, Axis: solver.AxisN, Index: 7}.String())
}

// TestResult_PathString verifies the arrow-joined walk listing.
func TestResult_PathString(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetNXPort(0, 1, true))

	res, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, "(0,1,E0) -> (0,1,E1)", res.PathString())
}

// TestResult_GridString verifies the step-number grid shape for the
// one-step walk: both states share the coordinate (0,1).
func TestResult_GridString(t *testing.T) {
	m, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetNXPort(0, 1, true))

	res, err := solver.Solve(m)
	require.NoError(t, err)

	grid := res.GridString()
	assert.Contains(t, grid, "Grid (step numbers at each position):")
	assert.Contains(t, grid, "y\\x  0")
	assert.Contains(t, grid, "0,1")
}

// TestResult_AnnotatedString verifies the per-step port annotation for both
// boundary and normal transitions.
func TestResult_AnnotatedString(t *testing.T) {
	// Boundary route: E0→E1 through the nx block at (0,1).
	m, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m.SetNXPort(0, 1, true))

	res, err := solver.Solve(m)
	require.NoError(t, err)

	out := res.AnnotatedString(m)
	assert.Contains(t, out, "Path details (1 steps):")
	assert.Contains(t, out, "--[E0->E1 @ nx(0,1)]-->")

	// Normal route: W0→W1 through the block at (1,1).
	m2, err := maze.New(2)
	require.NoError(t, err)
	require.NoError(t, m2.SetNormalPort(maze.DirW, 0, maze.DirW, 1, true))

	res2, err := solver.Solve(m2)
	require.NoError(t, err)
	assert.Contains(t, res2.AnnotatedString(m2), "--[W0->W1 @ normal(1,1)]-->")

	// Annotating against a maze with no open ports falls back.
	empty, err := maze.New(2)
	require.NoError(t, err)
	assert.Contains(t, res2.AnnotatedString(empty), "[transition unknown]")
}

// TestSolve_FullAnnotation verifies every step of the reference walk gets a
// concrete port annotation.
func TestSolve_FullAnnotation(t *testing.T) {
	m, err := maze.Parse(15, mazeK1)
	require.NoError(t, err)

	res, err := solver.Solve(m, solver.WithMaxCoord(50))
	require.NoError(t, err)

	out := res.AnnotatedString(m)
	assert.NotContains(t, out, "[transition unknown]", "reference walk must annotate fully")
	assert.Contains(t, out, "Path details (22 steps):")
}
