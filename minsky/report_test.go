package minsky_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repmaze/minsky"
)

// TestWriteReport_Determinism verifies that two renderings of the same
// options are byte-identical.
func TestWriteReport_Determinism(t *testing.T) {
	opts := minsky.DefaultReportOptions()

	var first, second bytes.Buffer
	require.NoError(t, minsky.WriteReport(&first, opts))
	require.NoError(t, minsky.WriteReport(&second, opts))
	assert.Equal(t, first.Bytes(), second.Bytes(), "report must be deterministic")
}

// TestWriteReport_Content spot-checks the structural sections and reference
// numbers of the default report.
func TestWriteReport_Content(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, minsky.WriteReport(&buf, minsky.DefaultReportOptions()))
	out := buf.String()

	assert.Contains(t, out, "=== Minsky ×2 Doubling Machine: Path Length Analysis ===")
	assert.Contains(t, out, "Recurrence: y_0 = 1, y_{k+1} = 1 + 2*y_k => y_k = 2^{k+1} - 1")

	// First and last table rows, exact widths.
	assert.Contains(t, out, "  1     15           22          3            5639     0.0039")
	assert.Contains(t, out, " 29    349  11811159902 1073741823        84408441   139.9287")

	assert.Contains(t, out, "Crossover at k=21, nterm=253")
	assert.Contains(t, out, "  Minsky:              46137222")
	assert.Contains(t, out, "  Counter pump:        32068761")

	assert.Contains(t, out, "=== Growth Orders ===")
	assert.Contains(t, out, "Minsky ×2:     T = O(2^{n/12})  [exponential in nterm]")
	assert.Contains(t, out, "Counter pump:  T = O(n³)         [polynomial in nterm]")

	assert.Contains(t, out, "=== Maze Strings ===")
	assert.Contains(t, out, "k=1 (nterm=15, path_len=22, y_final=3):")
	assert.Contains(t, out, layoutK1)
	assert.Contains(t, out, "k=5 (nterm=61, path_len=662, y_final=63):")
}

// TestWriteReport_NoCrossoverInRange verifies the fallback line when the
// table range ends before the crossover.
func TestWriteReport_NoCrossoverInRange(t *testing.T) {
	var buf bytes.Buffer
	opts := minsky.ReportOptions{MaxCycles: 5, SampleMazes: 0}
	require.NoError(t, minsky.WriteReport(&buf, opts))

	out := buf.String()
	assert.Contains(t, out, "No crossover found in range.")
	assert.NotContains(t, out, "Crossover at")
	assert.NotContains(t, out, "=== Maze Strings ===", "SampleMazes=0 must skip the section")
}

// TestWriteReport_RowCount verifies one table row per k in range.
func TestWriteReport_RowCount(t *testing.T) {
	var buf bytes.Buffer
	opts := minsky.ReportOptions{MaxCycles: 7, SampleMazes: 0}
	require.NoError(t, minsky.WriteReport(&buf, opts))

	rows := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 && trimmed[0] >= '1' && trimmed[0] <= '9' && strings.Count(line, " ") > 4 {
			rows++
		}
	}
	assert.Equal(t, 7, rows, "one row per k")
}

// TestWriteReport_BadOptions verifies rejection of an empty table range.
func TestWriteReport_BadOptions(t *testing.T) {
	var buf bytes.Buffer
	err := minsky.WriteReport(&buf, minsky.ReportOptions{MaxCycles: 0})
	assert.ErrorIs(t, err, minsky.ErrNonPositiveCycles)
}
