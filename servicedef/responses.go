package servicedef

import (
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Typed views of the API's response bodies, one per endpoint category. Each
// view records field presence separately from field value, so a test case can
// distinguish "field absent" (a contract violation) from "field present with
// an unexpected value" and report each precisely.

// HealthResponse is the view of the liveness endpoints' body.
type HealthResponse struct {
	Status     ldvalue.Value
	Version    ldvalue.Value
	HasVersion bool
	HasUptime  bool
}

func ParseHealthResponse(body ldvalue.Value) HealthResponse {
	var resp HealthResponse
	resp.Status = body.GetByKey("status")
	resp.Version, resp.HasVersion = body.TryGetByKey("version")
	_, resp.HasUptime = body.TryGetByKey("uptime")
	return resp
}

// LoginResponse is the view of a successful authentication body. Tokens are
// undefined when the field is absent, not a string, or empty.
type LoginResponse struct {
	AccessToken  ldvalue.OptionalString
	RefreshToken ldvalue.OptionalString
}

func ParseLoginResponse(body ldvalue.Value) LoginResponse {
	return LoginResponse{
		AccessToken:  optionalStringField(body, "access_token"),
		RefreshToken: optionalStringField(body, "refresh_token"),
	}
}

// ListResponse is the view of a collection endpoint's body. Every listing
// endpoint returns an object carrying the collection under a named key plus a
// total count, never a bare array.
type ListResponse struct {
	HasItems      bool
	ItemsAreArray bool
	HasTotal      bool
	Total         int
}

func ParseListResponse(body ldvalue.Value, collectionKey string) ListResponse {
	var resp ListResponse
	if items, ok := body.TryGetByKey(collectionKey); ok {
		resp.HasItems = true
		resp.ItemsAreArray = items.Type() == ldvalue.ArrayType
	}
	if total, ok := body.TryGetByKey("total"); ok {
		resp.HasTotal = true
		resp.Total = total.IntValue()
	}
	return resp
}

// CreateResponse extracts the identifier of a newly created resource. The API
// returns either a top-level "id" or the created resource as an object under
// its own key (for example "server") with a nested "id"; a top-level id wins
// when both are present.
type CreateResponse struct {
	ID          ldvalue.OptionalString
	HasResource bool
}

func ParseCreateResponse(body ldvalue.Value, resourceKey string) CreateResponse {
	var resp CreateResponse
	if id, ok := body.TryGetByKey("id"); ok {
		resp.ID = idString(id)
	}
	if wrapped, ok := body.TryGetByKey(resourceKey); ok {
		resp.HasResource = true
		if !resp.ID.IsDefined() {
			if id, ok := wrapped.TryGetByKey("id"); ok {
				resp.ID = idString(id)
			}
		}
	}
	return resp
}

// idString normalizes string and integer identifiers to a string form, since
// the API has been observed returning both.
func idString(v ldvalue.Value) ldvalue.OptionalString {
	switch v.Type() {
	case ldvalue.StringType:
		if v.StringValue() != "" {
			return ldvalue.NewOptionalString(v.StringValue())
		}
	case ldvalue.NumberType:
		return ldvalue.NewOptionalString(strconv.Itoa(v.IntValue()))
	}
	return ldvalue.OptionalString{}
}

func optionalStringField(body ldvalue.Value, key string) ldvalue.OptionalString {
	if v, ok := body.TryGetByKey(key); ok && v.Type() == ldvalue.StringType && v.StringValue() != "" {
		return ldvalue.NewOptionalString(v.StringValue())
	}
	return ldvalue.OptionalString{}
}
