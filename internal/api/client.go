// Package api is a typed client for the espresso brew-log REST API.
// Each method performs exactly one HTTP call against one endpoint, attaches
// the stored bearer token when present, and either decodes the JSON body
// (2xx) or returns an *Error carrying the normalized error detail (non-2xx).
// There are no retries and no caching; every call is a single round trip.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ivaneres/coffee/internal/errors"
	"github.com/Ivaneres/coffee/internal/logging"
)

// TokenSource supplies the current bearer token. An empty string means no
// token is held and the Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Client issues requests against one brew-log server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and by
// callers that need a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where the client reads the bearer token from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithTimeout sets a per-request timeout. Zero leaves the transport default
// in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the server at baseURL (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.NewValidationError("invalid server URL").
			WithField("server.base_url").WithValue(baseURL).WithCause(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.NewValidationError("server URL scheme must be http or https").
			WithField("server.base_url").WithValue(baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured server root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// do performs one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded 2xx response body. Non-2xx responses are
// returned as *Error; transport failures are wrapped as RequestError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewRequestError("failed to encode request body", err).
				WithMethod(method).WithPath(path)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return errors.NewRequestError("failed to build request", err).
			WithMethod(method).WithPath(path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewRequestError("request failed", errors.Join(errors.ErrServerUnavailable, err)).
			WithMethod(method).WithPath(path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewRequestError("failed to read response", err).
			WithMethod(method).WithPath(path).WithStatusCode(resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, method, path, data)
		c.logger.Warn("api error", "method", method, "path", path,
			"status", resp.StatusCode, "detail", apiErr.Detail.Message())
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.NewRequestError("failed to decode response", err).
				WithMethod(method).WithPath(path).WithStatusCode(resp.StatusCode)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// idPath joins a collection path with a numeric id, e.g. /api/beans/42.
func idPath(collection string, id int) string {
	return fmt.Sprintf("%s%d", collection, id)
}
