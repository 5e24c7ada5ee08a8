// Package minsky defines result types, options, and sentinel errors for the
// doubling-machine analysis.
package minsky

import "errors"

// Sentinel errors for analysis operations.
var (
	// ErrNegativeCycles indicates a negative doubling-cycle count.
	ErrNegativeCycles = errors.New("minsky: cycle count must be non-negative")
	// ErrNonPositiveCycles indicates a cycle count below 1 where at least
	// one doubling cycle is required.
	ErrNonPositiveCycles = errors.New("minsky: cycle count must be at least 1")
	// ErrNoCrossover indicates the inspected range contains no k whose
	// doubling-machine walk exceeds the counter pump baseline.
	ErrNoCrossover = errors.New("minsky: no crossover found in range")
)

// PathResult is the outcome of the exact walk-length computation:
// the total number of port traversals and the final counter value.
type PathResult struct {
	// Total is the exact walk length of the k-fold doubling machine.
	Total int64
	// FinalY is y_k = 2^{k+1} − 1, the counter value after k doublings.
	FinalY int64
}

// CycleTriple holds the three base terminal indices (a, b, c) of one
// doubling cycle: a heads Phase 1, b heads Phase 2, c is the nx catch.
type CycleTriple struct {
	A, B, C int
}

// CrossoverPoint describes the first k at which the doubling machine's walk
// length exceeds the counter pump baseline on the matching terminal count.
type CrossoverPoint struct {
	// K is the smallest qualifying cycle count.
	K int
	// TermCount is the terminal count of the k-cycle layout.
	TermCount int
	// PathLen is the doubling machine's walk length at K.
	PathLen int64
	// CounterPump is the baseline length at the matching terminal count.
	CounterPump int64
}

// ReportOptions configures WriteReport.
type ReportOptions struct {
	// MaxCycles is the inclusive upper bound of the table's k range.
	MaxCycles int
	// SampleMazes is the number of leading k values whose maze strings are
	// appended after the table; 0 disables the section.
	SampleMazes int
}

// DefaultReportOptions returns the reference report shape: the comparison
// table for k = 1..29 and maze strings for k = 1..5.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		MaxCycles:   29,
		SampleMazes: 5,
	}
}
