package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

// The server lifecycle chain (create, get, update, delete) intentionally runs
// in this order: the later steps consume the id remembered by the create step
// and skip if it never appeared. The metrics and containers cases create their
// own disposable servers so they do not depend on the chain.
func DoServerTests(t *T) {
	t.Run("List servers - requires auth", testServersRequireAuth)
	t.Run("List servers - authenticated", testServersListAuthenticated)
	t.Run("Create server", testServersCreate)
	t.Run("Get server by ID", testServersGetByID)
	t.Run("Update server", testServersUpdate)
	t.Run("Get server metrics", testServerMetrics)
	t.Run("Get server containers", testServerContainers)
	t.Run("Delete server", testServersDelete)
}

func testServersRequireAuth(t *T) framework.Verdict {
	var verdict framework.Verdict
	t.state.WithAccessToken(ldvalue.OptionalString{}, func() {
		verdict = expectUnauthorized(t, "/api/v1/servers", "Servers endpoint requires auth")
	})
	return verdict
}

func testServersListAuthenticated(t *T) framework.Verdict {
	if err := t.login(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Get("/api/v1/servers")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseListResponse(body, "servers")
	if !resp.HasItems {
		return framework.Fail("Response missing 'servers' field")
	}
	if !resp.ItemsAreArray {
		return framework.Fail("'servers' is not a list")
	}
	if !resp.HasTotal {
		return framework.Fail("Response missing 'total' field")
	}
	return framework.Passf("Listed %d servers", resp.Total)
}

func testServersCreate(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Post("/api/v1/servers", servicedef.ServerParams{
		Name:        "Test Server",
		Hostname:    "test.example.com",
		IPAddress:   "192.168.1.100",
		Port:        22,
		OSType:      "linux",
		Description: "Contract test server",
	})
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 201) {
		return framework.Failf("Expected 200 or 201, got %d", status)
	}
	resp := servicedef.ParseCreateResponse(body, "server")
	if !resp.ID.IsDefined() {
		return framework.Fail("Response missing server ID")
	}
	t.state.RememberResource(serverResource, resp.ID.StringValue())
	return framework.Pass("Server created successfully")
}

func testServersGetByID(t *T) framework.Verdict {
	id := t.state.Resource(serverResource)
	if !id.IsDefined() {
		return framework.Skipf("no test server created")
	}
	status, _, err := t.api.Get("/api/v1/servers/" + id.StringValue())
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	return framework.Pass("Server retrieved successfully")
}

func testServersUpdate(t *T) framework.Verdict {
	id := t.state.Resource(serverResource)
	if !id.IsDefined() {
		return framework.Skipf("no test server created")
	}
	status, _, err := t.api.Put("/api/v1/servers/"+id.StringValue(), servicedef.ServerParams{
		Name:        "Updated Test Server",
		Description: "Updated via contract test",
	})
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	return framework.Pass("Server updated successfully")
}

func testServerMetrics(t *T) framework.Verdict {
	return checkServerSubresource(t, servicedef.ServerParams{
		Name:     "Metrics Test Server",
		Hostname: "metrics.example.com",
		Port:     22,
	}, "metrics", "Server metrics endpoint working")
}

func testServerContainers(t *T) framework.Verdict {
	return checkServerSubresource(t, servicedef.ServerParams{
		Name:     "Container Test Server",
		Hostname: "containers.example.com",
		Port:     22,
	}, "containers", "Server containers endpoint working")
}

// checkServerSubresource creates a disposable server, asserts that the named
// sub-resource endpoint returns its field, and cleans the server up no matter
// how the assertion went. Cleanup failures never affect the verdict.
func checkServerSubresource(t *T, params servicedef.ServerParams, field, passMessage string) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Post("/api/v1/servers", params)
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 201) {
		return framework.Failf("Failed to create test server: %d", status)
	}
	id := servicedef.ParseCreateResponse(body, "server").ID
	defer t.cleanupServer(id)
	if !id.IsDefined() {
		return framework.Fail("Response missing server ID")
	}

	status, body, err = t.api.Get("/api/v1/servers/" + id.StringValue() + "/" + field)
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	if _, ok := body.TryGetByKey(field); !ok {
		return framework.Failf("Response missing '%s' field", field)
	}
	return framework.Pass(passMessage)
}

// cleanupServer deletes a disposable server created inside a single test case.
func (t *T) cleanupServer(id ldvalue.OptionalString) {
	if !id.IsDefined() {
		return
	}
	_, _, _ = t.api.Delete("/api/v1/servers/" + id.StringValue())
}

func testServersDelete(t *T) framework.Verdict {
	id := t.state.Resource(serverResource)
	if !id.IsDefined() {
		return framework.Skipf("no test server created")
	}
	// The id is forgotten whether or not the delete succeeds; the chain is over.
	defer t.state.ForgetResource(serverResource)
	status, _, err := t.api.Delete("/api/v1/servers/" + id.StringValue())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 204) {
		return framework.Failf("Expected 200 or 204, got %d", status)
	}
	return framework.Pass("Server deleted successfully")
}
