// Package framework contains the low-level test harness infrastructure that is
// not specific to the monitoring domain.
//
// The general model is:
//
// 1. A Runner owns a fixed, ordered registry of test cases grouped into named
// suites. Each case is executed exactly once per run, in registration order,
// and yields a Verdict. A panic escaping a case is converted into a failing
// Verdict rather than terminating the run.
//
// 2. Each executed case produces an immutable Result (identity, outcome,
// message, duration) which is appended to the run's Results in execution order
// and reported immediately through a TestLogger, so a human watching a live
// run sees outcomes as they happen.
//
// 3. PrintResults renders the final summary for a completed run. Overall
// success is defined as zero failing Results; the caller maps that to the
// process exit status.
//
// The domain-specific code that knows what is being tested lives in the
// apitests package, which registers its cases with a Runner and translates
// HTTP responses into Verdicts.
package framework
