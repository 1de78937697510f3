package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

func DoAlertRuleTests(t *T) {
	t.Run("List alert rules - requires auth", testAlertRulesRequireAuth)
	t.Run("List alert rules", testAlertRulesList)
	t.Run("Create alert rule", testAlertRulesCreate)
	t.Run("Delete alert rule", testAlertRulesDelete)
}

func DoAlertEventTests(t *T) {
	t.Run("List alert events", testAlertEventsList)
}

func testAlertRulesRequireAuth(t *T) framework.Verdict {
	var verdict framework.Verdict
	t.state.WithAccessToken(ldvalue.OptionalString{}, func() {
		verdict = expectUnauthorized(t, "/api/v1/alerts/rules", "Alert rules endpoint requires auth")
	})
	return verdict
}

func testAlertRulesList(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Get("/api/v1/alerts/rules")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseListResponse(body, "rules")
	if !resp.HasItems {
		return framework.Fail("Response missing 'rules' field")
	}
	if !resp.HasTotal {
		return framework.Fail("Response missing 'total' field")
	}
	return framework.Passf("Listed %d alert rules", resp.Total)
}

func testAlertRulesCreate(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Post("/api/v1/alerts/rules", servicedef.AlertRuleParams{
		Name:            "Test High CPU",
		MetricType:      "cpu",
		Operator:        "gt",
		Threshold:       90,
		DurationSeconds: 60,
		Severity:        "warning",
	})
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 201) {
		return framework.Failf("Expected 200 or 201, got %d", status)
	}
	resp := servicedef.ParseCreateResponse(body, "rule")
	if !resp.HasResource {
		return framework.Fail("Response missing 'rule' field")
	}
	if resp.ID.IsDefined() {
		t.state.RememberResource(alertRuleResource, resp.ID.StringValue())
	}
	return framework.Pass("Alert rule created successfully")
}

func testAlertRulesDelete(t *T) framework.Verdict {
	id := t.state.Resource(alertRuleResource)
	if !id.IsDefined() {
		return framework.Skipf("no test alert rule created")
	}
	defer t.state.ForgetResource(alertRuleResource)
	status, _, err := t.api.Delete("/api/v1/alerts/rules/" + id.StringValue())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 204) {
		return framework.Failf("Expected 200 or 204, got %d", status)
	}
	return framework.Pass("Alert rule deleted successfully")
}

func testAlertEventsList(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Get("/api/v1/alerts/events")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseListResponse(body, "events")
	if !resp.HasItems {
		return framework.Fail("Response missing 'events' field")
	}
	if !resp.HasTotal {
		return framework.Fail("Response missing 'total' field")
	}
	return framework.Passf("Listed %d alert events", resp.Total)
}
