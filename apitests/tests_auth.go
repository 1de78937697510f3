package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

func DoAuthTests(t *T) {
	t.Run("Login - invalid credentials", testLoginInvalidCredentials)
	t.Run("Login - missing fields", testLoginMissingFields)
	t.Run("Protected endpoint - no auth", testProtectedEndpointWithoutAuth)
	t.Run("Protected endpoint - invalid token", testProtectedEndpointInvalidToken)
	t.Run("Logout - without token", testLogoutWithoutToken)
	t.Run("Refresh - without token", testRefreshWithoutToken)
}

func testLoginInvalidCredentials(t *T) framework.Verdict {
	status, _, err := t.api.Post("/api/v1/auth/login", servicedef.LoginParams{
		Username: "invalid",
		Password: "wrongpassword",
	})
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 401 {
		return framework.Failf("Expected 401, got %d", status)
	}
	return framework.Pass("Invalid credentials rejected")
}

// The contract tolerates either a generic bad-request or an unauthorized
// response for a login with no fields at all.
func testLoginMissingFields(t *T) framework.Verdict {
	status, _, err := t.api.Post("/api/v1/auth/login", ldvalue.ObjectBuild().Build())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 400, 401) {
		return framework.Failf("Expected 400 or 401, got %d", status)
	}
	return framework.Pass("Missing fields rejected")
}

func testProtectedEndpointWithoutAuth(t *T) framework.Verdict {
	var verdict framework.Verdict
	t.state.WithAccessToken(ldvalue.OptionalString{}, func() {
		verdict = expectUnauthorized(t, "/api/v1/auth/me", "Protected endpoint requires auth")
	})
	return verdict
}

func testProtectedEndpointInvalidToken(t *T) framework.Verdict {
	var verdict framework.Verdict
	t.state.WithAccessToken(ldvalue.NewOptionalString("invalid.token.here"), func() {
		verdict = expectUnauthorized(t, "/api/v1/auth/me", "Invalid token rejected")
	})
	return verdict
}

func testLogoutWithoutToken(t *T) framework.Verdict {
	status, _, err := t.api.Post("/api/v1/auth/logout", ldvalue.ObjectBuild().Build())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 400, 401) {
		return framework.Failf("Expected 400 or 401, got %d", status)
	}
	return framework.Pass("Logout without token rejected")
}

func testRefreshWithoutToken(t *T) framework.Verdict {
	status, _, err := t.api.Post("/api/v1/auth/refresh", ldvalue.ObjectBuild().Build())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 400, 401) {
		return framework.Failf("Expected 400 or 401, got %d", status)
	}
	return framework.Pass("Refresh without token rejected")
}
