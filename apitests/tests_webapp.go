package apitests

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

// Web app cases run only when a front-end address was configured; otherwise
// every one of them reports a passing skip, leaving the run's outcome
// unaffected by the front end being absent.
func DoWebAppTests(t *T) {
	t.Run("Serves HTML", testWebAppServesHTML)
	t.Run("Flutter JS bundle", testWebAppFlutterAssets)
	t.Run("API proxy", testWebAppAPIProxy)
	t.Run("SPA routing", testWebAppSPARouting)
}

func testWebAppServesHTML(t *T) framework.Verdict {
	if t.webApp == nil {
		return framework.Skipf("no web URL configured")
	}
	status, content, err := t.webApp.GetDocument("/")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	if !isHTMLDocument(content) {
		return framework.Fail("Response is not HTML")
	}
	return framework.Pass("Web app serves HTML")
}

func testWebAppFlutterAssets(t *T) framework.Verdict {
	if t.webApp == nil {
		return framework.Skipf("no web URL configured")
	}
	status, _, err := t.webApp.GetDocument("/main.dart.js")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200 for main.dart.js, got %d", status)
	}
	return framework.Pass("Flutter JS bundle found")
}

// An API path reached through the front end's own address must proxy through
// to the API and honor the same contract as calling the API directly.
func testWebAppAPIProxy(t *T) framework.Verdict {
	if t.webApp == nil {
		return framework.Skipf("no web URL configured")
	}
	status, content, err := t.webApp.GetDocument("/api/v1/health")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseHealthResponse(ldvalue.Parse([]byte(content)))
	if resp.Status.StringValue() != "ok" {
		return framework.Fail("API proxy returned invalid data")
	}
	return framework.Pass("API proxy working")
}

// A single-page app serves its root document for any unrecognized path.
func testWebAppSPARouting(t *T) framework.Verdict {
	if t.webApp == nil {
		return framework.Skipf("no web URL configured")
	}
	status, content, err := t.webApp.GetDocument("/login")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200 for SPA route, got %d", status)
	}
	if !isHTMLDocument(content) {
		return framework.Fail("SPA route did not return index.html")
	}
	return framework.Pass("SPA routing works")
}

func isHTMLDocument(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<!doctype html>") || strings.Contains(lower, "<html")
}
