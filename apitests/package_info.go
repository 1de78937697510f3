// Package apitests contains the monitoring API contract tests themselves and
// their supporting API.
//
// Test harness infrastructure that is not specific to the monitoring domain,
// such as ordered execution, panic isolation, and result aggregation, is in
// the lower-level framework package.
package apitests
