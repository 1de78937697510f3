package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const summaryDividerWidth = 60

// DurationMillis renders a duration as fractional milliseconds, the unit used
// throughout the report.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// PrintResults writes the final summary block for a completed run.
func PrintResults(w io.Writer, results Results) {
	divider := strings.Repeat("=", summaryDividerWidth)
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	bold.Fprintln(w, divider)
	bold.Fprintln(w, "Test Summary")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "  Total:  %d\n", len(results.Tests))
	fmt.Fprintf(w, "  Passed: %s\n", color.GreenString("%d", results.PassedCount()))
	fmt.Fprintf(w, "  Failed: %s\n", color.RedString("%d", results.FailedCount()))
	fmt.Fprintf(w, "  Time:   %.1fms\n", DurationMillis(results.TotalDuration()))
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	if results.OK() {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "✓ All tests passed!")
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(w, "✗ %d test(s) failed\n", results.FailedCount())
	}
}
