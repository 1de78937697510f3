package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/frogg-app/monitoring-contract-tests/framework"
)

// ConsoleTestLogger prints each test case's outcome as it happens, so a human
// watching a live run sees pass/fail before the final summary.
type ConsoleTestLogger struct{}

func (c *ConsoleTestLogger) GroupStarted(name string) {
	fmt.Println()
	color.New(color.Bold).Println(name)
	fmt.Println(strings.Repeat("-", 40))
}

func (c *ConsoleTestLogger) CaseFinished(result framework.Result) {
	status := color.GreenString("PASS")
	if !result.Passed {
		status = color.RedString("FAIL")
	}
	fmt.Printf("  %s %s (%.1fms)\n", status, result.Name, framework.DurationMillis(result.Duration))
	if !result.Passed {
		for _, line := range strings.Split(result.Message, "\n") {
			fmt.Printf("       %s\n", color.YellowString(line))
		}
	}
}
