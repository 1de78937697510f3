package client

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/frogg-app/monitoring-contract-tests/logging"
)

// WebAppClient fetches documents from the web front end. Unlike the API
// client it sends no credentials and does not decode the response, since the
// front end serves HTML and static assets.
type WebAppClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewWebAppClient(baseURL string, logger logging.Logger) *WebAppClient {
	if logger == nil {
		logger = logging.NullLogger()
	}
	return &WebAppClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
}

func (c *WebAppClient) GetDocument(path string) (int, string, error) {
	c.logger.Printf("GET %s", path)
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return 0, "", errors.Wrapf(err, "GET %s failed", path)
	}
	data, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, "", errors.Wrapf(err, "error reading response body from %s", path)
	}
	c.logger.Printf("GET %s -> %d (%d bytes)", path, resp.StatusCode, len(data))
	return resp.StatusCode, string(data), nil
}
