// Package minsky - closed forms and recurrences of the doubling machine.
package minsky

import "fmt"

// Per-cycle and final-phase segment costs. Each doubling cycle computes
// y_new = 1 + 2·y_old in two phases; the final phase extracts the counter.
const (
	transitionCost = 1 // W→N entry into a cycle's Phase 1
	nyCatchCost    = 1 // ny boundary catch ending Phase 1
	bridgeCost     = 1 // S→E bridge re-arming y for Phase 2
	nxCatchCost    = 1 // nx boundary catch ending Phase 2
	finalPhaseCost = 4 // Phase 3: transition + ny + bridge + goal (excl. DEC_Y loop)
)

// ySequence builds y[0..k] of the doubling recurrence y_0 = 1,
// y_i = 1 + 2·y_{i−1}, i.e. y_i = 2^{i+1} − 1.
// Complexity: O(k).
func ySequence(k int) []int64 {
	y := make([]int64, k+1)
	y[0] = 1
	for i := 1; i <= k; i++ {
		y[i] = 1 + 2*y[i-1]
	}
	return y
}

// PathLength computes the exact walk length of the k-fold ×2 doubling
// machine together with the final counter value y_k.
//
// Cycle i (counter y_i before the cycle, x_after = 1 + 2·y_i after):
//
//	transition(1) + Phase1(4·y_i) + ny(1) + bridge(1) + Phase2(3·(x_after−1) + 2)
//
// followed by the final extraction phase 1 + y_k + 1 + 1 + 1.
// k = 0 degenerates to the final phase alone: Total = 5, FinalY = 1.
//
// Returns ErrNegativeCycles for k < 0.
// Complexity: O(k).
func PathLength(k int) (PathResult, error) {
	if k < 0 {
		return PathResult{}, fmt.Errorf("%w: got %d", ErrNegativeCycles, k)
	}
	y := ySequence(k)

	var total int64
	for i := 0; i < k; i++ {
		yi := y[i]
		xAfter := 1 + 2*yi
		phase1 := 4 * yi
		phase2 := 3*(xAfter-1) + 1 + nxCatchCost
		total += transitionCost + phase1 + nyCatchCost + bridgeCost + phase2
	}
	total += y[k] + finalPhaseCost
	return PathResult{Total: total, FinalY: y[k]}, nil
}

// TermCount returns the number of terminal indices the k-cycle layout
// allocates: 15, 25, 37 for k = 1, 2, 3 and 37 + 12·(k−3) beyond. The
// values are exactly MaxIndex()+1 of the corresponding Layout; the two are
// cross-checked by a property test.
//
// Returns ErrNonPositiveCycles for k < 1.
// Complexity: O(1).
func TermCount(k int) (int, error) {
	switch {
	case k < 1:
		return 0, fmt.Errorf("%w: got %d", ErrNonPositiveCycles, k)
	case k == 1:
		return 15, nil
	case k == 2:
		return 25, nil
	case k == 3:
		return 37, nil
	default:
		return 37 + cycleStride*(k-3), nil
	}
}

// CounterPumpLength is the closed-form walk length of the counter pump
// baseline on n terminals (pump width w = n−1):
//
//	T = (n−1)·(2n² − 3n − 2) − 3
//
// The formula is total — n = 1 yields −3, which is preserved as-is.
// Complexity: O(1).
func CounterPumpLength(n int) int64 {
	nn := int64(n)
	return (nn-1)*(2*nn*nn-3*nn-2) - 3
}

// Crossover finds the smallest k in [1, maxK] whose doubling-machine walk
// length strictly exceeds the counter pump baseline at the matching
// terminal count.
//
// Returns ErrNonPositiveCycles for maxK < 1 and ErrNoCrossover when every
// k in range stays below the baseline.
// Complexity: O(maxK²) arithmetic steps (O(k) per path length).
func Crossover(maxK int) (CrossoverPoint, error) {
	if maxK < 1 {
		return CrossoverPoint{}, fmt.Errorf("%w: got %d", ErrNonPositiveCycles, maxK)
	}
	for k := 1; k <= maxK; k++ {
		res, err := PathLength(k)
		if err != nil {
			return CrossoverPoint{}, err
		}
		nterm, err := TermCount(k)
		if err != nil {
			return CrossoverPoint{}, err
		}
		pump := CounterPumpLength(nterm)
		if res.Total > pump {
			return CrossoverPoint{
				K:           k,
				TermCount:   nterm,
				PathLen:     res.Total,
				CounterPump: pump,
			}, nil
		}
	}
	return CrossoverPoint{}, fmt.Errorf("%w: [1, %d]", ErrNoCrossover, maxK)
}
