package todosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
)

const apiBasePath = "api/v1"

// buildAPIURL builds a URL under the /api/v1 prefix. Query parameters are
// encoded in the filter's canonical key order.
func (c *Client) buildAPIURL(qp url.Values, parts ...string) string {
	return c.buildURL(qp, append([]string{apiBasePath}, parts...)...)
}

// buildURL builds a URL directly under the service root, for the handful of
// unversioned endpoints such as login and status.
func (c *Client) buildURL(qp url.Values, parts ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{u.Path}, parts...)...)
	if len(qp) > 0 {
		u.RawQuery = queryfilter.Encode(qp)
	}
	return u.String()
}

// listValues serializes an optional filter, applying defaults when nil and
// stamping the advisory admin flag when admin mode is enabled.
func (c *Client) listValues(filter *queryfilter.QueryFilter) url.Values {
	f := queryfilter.Default()
	if filter != nil {
		f = *filter
	}
	return f.ToValues(c.adminMode.Load())
}

// do performs an HTTP request against the service. A non-nil body is encoded
// as JSON. The bearer token, when configured, rides in the Authorization
// header; cookie authentication is handled by the client's jar.
func (c *Client) do(ctx context.Context, method, uri string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("todosdk: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, fmt.Errorf("todosdk: failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.BearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("todosdk: rate limiter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("todosdk: failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON decodes a JSON response into target, returning a typed *APIError
// when the status code differs from expectedStatus.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("todosdk: failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("todosdk: failed to decode response: %w", err)
	}

	return nil
}

// checkStatus returns a typed *APIError when the response status differs from
// the expected status. The body is consumed either way.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}
