// File: solver/example_test.go
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/solver"
)

// ExampleSolve demonstrates the shortest walk through a minimal maze:
// a single open nx boundary port joins the start terminal to the goal.
func ExampleSolve() {
	m, _ := maze.New(2)
	_ = m.SetNXPort(0, 1, true)

	res, _ := solver.Solve(m)
	fmt.Println("length:", res.Length)
	fmt.Println(res.PathString())

	// Output:
	// length: 1
	// (0,1,E0) -> (0,1,E1)
}
