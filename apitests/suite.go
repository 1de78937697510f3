package apitests

import (
	"github.com/frogg-app/monitoring-contract-tests/client"
	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/logging"
)

// RunTestSuite executes every registered test case against the given service
// addresses, in registration order, and returns the accumulated results. Each
// run gets a fresh SessionState; nothing persists across runs.
//
// The web app cases are always registered. When webAppURL is empty they report
// passing skips, so the shape of the result list does not depend on the
// deployment being tested.
func RunTestSuite(apiURL, webAppURL string, testLogger framework.TestLogger, debugLogger logging.Logger) framework.Results {
	state := NewSessionState()
	t := &T{
		runner: framework.NewRunner(testLogger),
		api:    client.NewAPIClient(apiURL, state, debugLogger),
		state:  state,
	}
	if webAppURL != "" {
		t.webApp = client.NewWebAppClient(webAppURL, debugLogger)
	}

	t.Group("API Health Tests", DoHealthTests)
	t.Group("Authentication Tests", DoAuthTests)
	t.Group("Servers API Tests", DoServerTests)
	t.Group("Alert Rules API Tests", DoAlertRuleTests)
	t.Group("Alert Events API Tests", DoAlertEventTests)
	t.Group("Notification Channels API Tests", DoNotificationChannelTests)
	t.Group("Web App Tests", DoWebAppTests)

	return t.runner.Results()
}
