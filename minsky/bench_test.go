package minsky_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/repmaze/minsky"
)

// BenchmarkPathLength measures the recurrence evaluation at the top of the
// reporting range.
func BenchmarkPathLength(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := minsky.PathLength(29); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLayout measures layout generation for a mid-size machine.
func BenchmarkLayout(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := minsky.Layout(16); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWriteReport measures a full default report rendering.
func BenchmarkWriteReport(b *testing.B) {
	opts := minsky.DefaultReportOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := minsky.WriteReport(io.Discard, opts); err != nil {
			b.Fatal(err)
		}
	}
}
