package framework

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Runner executes test cases strictly sequentially, exactly once each, in the
// order they are registered. One case's failure - including a panic escaping
// its procedure - never prevents subsequent cases from running.
type Runner struct {
	logger  TestLogger
	group   string
	results Results
}

func NewRunner(testLogger TestLogger) *Runner {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	return &Runner{logger: testLogger}
}

// Group sets the suite label for every case registered inside action and
// announces the group to the logger.
func (r *Runner) Group(name string, action func()) {
	r.group = name
	r.logger.GroupStarted(name)
	action()
}

// Run executes a single test case: it times the procedure, converts any panic
// into a failing Verdict, appends the Result in execution order, and reports
// it to the logger immediately.
func (r *Runner) Run(name string, procedure func() Verdict) {
	start := time.Now()
	verdict := runProtected(procedure)
	result := Result{
		Name:     name,
		Group:    r.group,
		Passed:   verdict.Passed,
		Message:  verdict.Message,
		Duration: time.Since(start),
	}
	r.results.Tests = append(r.results.Tests, result)
	r.logger.CaseFinished(result)
}

func runProtected(procedure func() Verdict) (verdict Verdict) {
	defer func() {
		if p := recover(); p != nil {
			verdict = Verdict{
				Passed:  false,
				Message: fmt.Sprintf("unexpected panic in test: %+v\n%s", p, string(debug.Stack())),
			}
		}
	}()
	return procedure()
}

// Results returns the accumulated results for the run so far.
func (r *Runner) Results() Results {
	return r.results
}
