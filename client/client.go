package client

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frogg-app/monitoring-contract-tests/logging"
)

const defaultRequestTimeout = time.Second * 10

// TokenSource supplies the bearer credential to attach to API requests, if one
// is currently held. The session state implements this, so the client always
// sees the credential as the currently executing test case left it.
type TokenSource interface {
	AccessToken() ldvalue.OptionalString
}

// APIClient performs JSON requests against the monitoring API. Responses are
// returned as a status code plus a decoded body; an HTTP error status is data
// for the caller to assert on, not an error. Only network-level failures
// produce a non-nil error.
type APIClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     logging.Logger
}

func NewAPIClient(baseURL string, tokens TokenSource, logger logging.Logger) *APIClient {
	if logger == nil {
		logger = logging.NullLogger()
	}
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
}

func (c *APIClient) Get(path string) (int, ldvalue.Value, error) {
	return c.do("GET", path, nil)
}

func (c *APIClient) Post(path string, params interface{}) (int, ldvalue.Value, error) {
	return c.do("POST", path, params)
}

func (c *APIClient) Put(path string, params interface{}) (int, ldvalue.Value, error) {
	return c.do("PUT", path, params)
}

func (c *APIClient) Delete(path string) (int, ldvalue.Value, error) {
	return c.do("DELETE", path, nil)
}

func (c *APIClient) do(method, path string, params interface{}) (int, ldvalue.Value, error) {
	var requestBody io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return 0, ldvalue.Null(), errors.Wrap(err, "unable to marshal request parameters")
		}
		requestBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, requestBody)
	if err != nil {
		return 0, ldvalue.Null(), err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.AccessToken(); token.IsDefined() {
		req.Header.Set("Authorization", "Bearer "+token.StringValue())
	}

	c.logger.Printf("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, ldvalue.Null(), errors.Wrapf(err, "%s %s failed", method, path)
	}
	data, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, ldvalue.Null(), errors.Wrapf(err, "error reading response body from %s", path)
	}
	c.logger.Printf("%s %s -> %d %s", method, path, resp.StatusCode, string(data))

	// An undecodable or empty body decodes to null; the cases that care about
	// body fields will report the missing field.
	body := ldvalue.Null()
	if len(data) > 0 {
		body = ldvalue.Parse(data)
	}
	return resp.StatusCode, body, nil
}
