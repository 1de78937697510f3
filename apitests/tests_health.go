package apitests

import (
	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

func DoHealthTests(t *T) {
	t.Run("Health endpoint (/health)", testHealthEndpoint)
	t.Run("API v1 health (/api/v1/health)", testAPIV1HealthEndpoint)
}

func testHealthEndpoint(t *T) framework.Verdict {
	status, body, err := t.api.Get("/health")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseHealthResponse(body)
	if resp.Status.StringValue() != "ok" {
		return framework.Failf("Expected status 'ok', got '%s'", resp.Status.StringValue())
	}
	return framework.Pass("Health check passed")
}

// The versioned health endpoint carries metadata; version and uptime only
// need to be present, not to have any particular value.
func testAPIV1HealthEndpoint(t *T) framework.Verdict {
	status, body, err := t.api.Get("/api/v1/health")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseHealthResponse(body)
	if resp.Status.StringValue() != "ok" {
		return framework.Failf("Expected status 'ok', got '%s'", resp.Status.StringValue())
	}
	if !resp.HasVersion {
		return framework.Fail("Missing version field")
	}
	if !resp.HasUptime {
		return framework.Fail("Missing uptime field")
	}
	return framework.Passf("API version: %s", resp.Version.StringValue())
}
