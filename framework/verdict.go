package framework

import "fmt"

// Verdict is the outcome yielded by one test case procedure: whether the
// system under test honored its contract, plus a human-readable message.
//
// A skip is deliberately modeled as a passing Verdict with an explanatory
// message: a case whose prerequisite resource was never created is not a
// failure of the system under test.
type Verdict struct {
	Passed  bool
	Message string
}

// Pass returns a passing Verdict with the given message.
func Pass(message string) Verdict {
	return Verdict{Passed: true, Message: message}
}

// Passf returns a passing Verdict with a formatted message.
func Passf(format string, args ...interface{}) Verdict {
	return Verdict{Passed: true, Message: fmt.Sprintf(format, args...)}
}

// Fail returns a failing Verdict with the given message.
func Fail(message string) Verdict {
	return Verdict{Message: message}
}

// Failf returns a failing Verdict with a formatted message.
func Failf(format string, args ...interface{}) Verdict {
	return Verdict{Message: fmt.Sprintf(format, args...)}
}

// FailErr returns a failing Verdict whose message is the error's description.
// Transport-level failures are reported this way rather than aborting the run.
func FailErr(err error) Verdict {
	return Verdict{Message: err.Error()}
}

// Skipf returns a passing Verdict indicating that the case did not exercise
// the system under test because a prerequisite was absent.
func Skipf(format string, args ...interface{}) Verdict {
	return Verdict{Passed: true, Message: "Skipped (" + fmt.Sprintf(format, args...) + ")"}
}
