package framework

import "time"

// Result is the immutable record of one executed test case. The Runner creates
// it as soon as the case's procedure returns (or panics) and never modifies it
// afterwards.
type Result struct {
	Name     string
	Group    string
	Passed   bool
	Message  string
	Duration time.Duration
}

// Results accumulates Result values for a run. The slice order is the
// execution order, which is also the registration order and the report order.
type Results struct {
	Tests []Result
}

// OK reports whether every test case in the run passed. This is the only
// success signal the harness exposes; the process exit status is derived from
// it and nothing else.
func (r Results) OK() bool {
	return r.FailedCount() == 0
}

func (r Results) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Passed {
			n++
		}
	}
	return n
}

func (r Results) FailedCount() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Passed {
			n++
		}
	}
	return n
}

// TotalDuration is the sum of the individual case durations, not wall-clock
// time for the run.
func (r Results) TotalDuration() time.Duration {
	var total time.Duration
	for _, t := range r.Tests {
		total += t.Duration
	}
	return total
}
