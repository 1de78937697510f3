package apitests

import (
	"github.com/pkg/errors"

	"github.com/frogg-app/monitoring-contract-tests/client"
	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

// The seed account provisioned by the monitoring API for administrative use.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// Logical names under which created resources are remembered in SessionState.
const (
	serverResource    = "server"
	alertRuleResource = "alert-rule"
	channelResource   = "notification-channel"
)

// T is the scope passed to every test case procedure, giving it access to the
// transports and the shared session state.
type T struct {
	runner *framework.Runner
	api    *client.APIClient
	webApp *client.WebAppClient // nil when no web URL was configured
	state  *SessionState
}

func (t *T) Group(name string, action func(*T)) {
	t.runner.Group(name, func() { action(t) })
}

func (t *T) Run(name string, procedure func(*T) framework.Verdict) {
	t.runner.Run(name, func() framework.Verdict { return procedure(t) })
}

// login authenticates as the admin account and stores the returned credentials
// in the session state.
func (t *T) login() error {
	status, body, err := t.api.Post("/api/v1/auth/login", servicedef.LoginParams{
		Username: adminUsername,
		Password: adminPassword,
	})
	if err != nil {
		return err
	}
	if status != 200 {
		return errors.Errorf("login failed with status %d", status)
	}
	resp := servicedef.ParseLoginResponse(body)
	if !resp.AccessToken.IsDefined() {
		return errors.New("no access token returned")
	}
	t.state.SetAccessToken(resp.AccessToken.StringValue())
	if resp.RefreshToken.IsDefined() {
		t.state.SetRefreshToken(resp.RefreshToken.StringValue())
	}
	return nil
}

// ensureLoggedIn performs a login only if no access credential is held yet.
// Cases that need authentication call this rather than assuming an earlier
// login case ran, which keeps the registration order a convenience rather
// than a correctness dependency.
func (t *T) ensureLoggedIn() error {
	if t.state.AccessToken().IsDefined() {
		return nil
	}
	return t.login()
}

// expectUnauthorized asserts that an endpoint rejects the current credential
// (or lack of one) with a 401.
func expectUnauthorized(t *T, path string, passMessage string) framework.Verdict {
	status, _, err := t.api.Get(path)
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 401 {
		return framework.Failf("Expected 401, got %d", status)
	}
	return framework.Pass(passMessage)
}

func statusIn(status int, accepted ...int) bool {
	for _, a := range accepted {
		if status == a {
			return true
		}
	}
	return false
}
