package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/framework"
	"github.com/frogg-app/monitoring-contract-tests/servicedef"
)

func DoNotificationChannelTests(t *T) {
	t.Run("List channels - requires auth", testNotificationChannelsRequireAuth)
	t.Run("List notification channels", testNotificationChannelsList)
	t.Run("Create notification channel", testNotificationChannelsCreate)
	t.Run("Delete notification channel", testNotificationChannelsDelete)
}

func testNotificationChannelsRequireAuth(t *T) framework.Verdict {
	var verdict framework.Verdict
	t.state.WithAccessToken(ldvalue.OptionalString{}, func() {
		verdict = expectUnauthorized(t, "/api/v1/settings/notifications",
			"Notification channels endpoint requires auth")
	})
	return verdict
}

func testNotificationChannelsList(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Get("/api/v1/settings/notifications")
	if err != nil {
		return framework.FailErr(err)
	}
	if status != 200 {
		return framework.Failf("Expected 200, got %d", status)
	}
	resp := servicedef.ParseListResponse(body, "channels")
	if !resp.HasItems {
		return framework.Fail("Response missing 'channels' field")
	}
	if !resp.HasTotal {
		return framework.Fail("Response missing 'total' field")
	}
	return framework.Passf("Listed %d notification channels", resp.Total)
}

func testNotificationChannelsCreate(t *T) framework.Verdict {
	if err := t.ensureLoggedIn(); err != nil {
		return framework.FailErr(err)
	}
	status, body, err := t.api.Post("/api/v1/settings/notifications", servicedef.NotificationChannelParams{
		Name:   "Test Webhook",
		Type:   "webhook",
		Config: map[string]string{"url": "https://example.com/test"},
	})
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 201) {
		return framework.Failf("Expected 200 or 201, got %d", status)
	}
	resp := servicedef.ParseCreateResponse(body, "channel")
	if !resp.HasResource {
		return framework.Fail("Response missing 'channel' field")
	}
	if resp.ID.IsDefined() {
		t.state.RememberResource(channelResource, resp.ID.StringValue())
	}
	return framework.Pass("Notification channel created successfully")
}

func testNotificationChannelsDelete(t *T) framework.Verdict {
	id := t.state.Resource(channelResource)
	if !id.IsDefined() {
		return framework.Skipf("no test notification channel created")
	}
	defer t.state.ForgetResource(channelResource)
	status, _, err := t.api.Delete("/api/v1/settings/notifications/" + id.StringValue())
	if err != nil {
		return framework.FailErr(err)
	}
	if !statusIn(status, 200, 204) {
		return framework.Failf("Expected 200 or 204, got %d", status)
	}
	return framework.Pass("Notification channel deleted successfully")
}
