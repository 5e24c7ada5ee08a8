// File: minsky/example_test.go
package minsky_test

import (
	"fmt"

	"github.com/katalvlaran/repmaze/minsky"
)

// ExamplePathLength demonstrates the exact walk length of a small doubling
// machine: one doubling cycle walks 22 ports and leaves the counter at 3.
func ExamplePathLength() {
	res, _ := minsky.PathLength(1)
	fmt.Println("total:", res.Total)
	fmt.Println("y_final:", res.FinalY)

	// Output:
	// total: 22
	// y_final: 3
}

// ExampleTermCount demonstrates the terminal allocation pattern: explicit
// values up to k = 3, then a 12-index band per extra cycle.
func ExampleTermCount() {
	for _, k := range []int{1, 2, 3, 4, 7} {
		nterm, _ := minsky.TermCount(k)
		fmt.Printf("k=%d nterm=%d\n", k, nterm)
	}

	// Output:
	// k=1 nterm=15
	// k=2 nterm=25
	// k=3 nterm=37
	// k=4 nterm=49
	// k=7 nterm=85
}

// ExampleCrossover demonstrates locating the point where the exponential
// doubling machine overtakes the cubic counter pump.
func ExampleCrossover() {
	cross, _ := minsky.Crossover(29)
	fmt.Printf("k=%d nterm=%d\n", cross.K, cross.TermCount)
	fmt.Printf("minsky=%d pump=%d\n", cross.PathLen, cross.CounterPump)

	// Output:
	// k=21 nterm=253
	// minsky=46137222 pump=32068761
}

// ExampleLayout demonstrates generating the maze string of a single
// doubling cycle and materializing it into a solvable maze.
func ExampleLayout() {
	l, _ := minsky.Layout(1)
	fmt.Println("nterm:", l.TermCount())
	fmt.Println("nx:", l.NX[0])
	m, _ := l.Build()
	fmt.Println("ports:", m.TotalPorts())

	// Output:
	// nterm: 15
	// nx: E9->E11
	// ports: 4020
}
