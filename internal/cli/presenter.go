package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/rsacore/internal/metrics"
	"github.com/agbru/rsacore/internal/selftest"
	"github.com/agbru/rsacore/internal/sysmon"
	"github.com/agbru/rsacore/internal/ui"
)

// PresentSuiteTable displays the self-test summary table with suite names,
// durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func PresentSuiteTable(results []selftest.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Self-Test Summary ---\n")

	// Find the maximum suite name width for proper alignment
	maxNameLen := 5 // "Suite" header length
	maxDurationLen := 8
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if l := len(formatResultDuration(res.Duration)); l > maxDurationLen {
			maxDurationLen = l
		}
	}

	fmt.Fprintf(out, "%sSuite%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-5),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		duration := formatResultDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func formatResultDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return FormatExecutionDuration(d)
}

// padRight returns s followed by the given number of spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// BenchReport aggregates the outcome of one benchmark run for display.
type BenchReport struct {
	Bits   int
	Rounds int
	Total  time.Duration
	PerOp  time.Duration
	Memory metrics.MemorySnapshot
	System sysmon.Stats
}

// PresentBenchReport displays the benchmark outcome, including per-operation
// latency, allocation activity, and the system load during the run.
func PresentBenchReport(r BenchReport, out io.Writer) {
	fmt.Fprintf(out, "\n--- Benchmark: %d-bit modular exponentiation ---\n", r.Bits)
	fmt.Fprintf(out, "  Rounds:     %d\n", r.Rounds)
	fmt.Fprintf(out, "  Total:      %s%s%s\n", ui.ColorWarning(), FormatExecutionDuration(r.Total), ui.ColorReset())
	fmt.Fprintf(out, "  Per op:     %s%s%s\n", ui.ColorBold(), FormatExecutionDuration(r.PerOp), ui.ColorReset())
	fmt.Fprintf(out, "  GC cycles:  %d\n", r.Memory.NumGC)
	fmt.Fprintf(out, "  Allocs:     %d\n", r.Memory.Mallocs)
	fmt.Fprintf(out, "  System:     %s\n", r.System)
}
