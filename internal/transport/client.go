// Package transport is the HTTP layer shared by every source. It applies
// authentication and the User-Agent header, bounds response sizes, and
// turns failures into the error types of pkg/errors:
//
//   - non-2xx responses become *errors.APIError (404 matches ErrNotFound)
//   - expired deadlines become *errors.TimeoutError
//   - undecodable payloads become *errors.ParseError
//   - GraphQL error payloads become *errors.GraphQLError
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	source    string
	http      *http.Client
	auth      Authenticator
	apiKey    string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAuth sets the authenticator and its credential. An empty apiKey
// leaves requests unauthenticated.
func WithAuth(auth Authenticator, apiKey string) Option {
	return func(c *Client) {
		c.auth = auth
		c.apiKey = apiKey
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a new transport client for the named source.
func New(source string, opts ...Option) *Client {
	c := &Client{
		source:    source,
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		auth:      &NoAuth{},
		userAgent: constants.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the name of the source this client talks to.
func (c *Client) Source() string {
	return c.source
}

// Authenticated reports whether requests carry a credential.
func (c *Client) Authenticated() bool {
	return c.apiKey != ""
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	logger := logging.Ctx(ctx).Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("elapsed", time.Since(start))
	if err != nil {
		logger.Err(err).Msg("upstream request failed")
		return nil, c.requestError(ctx, req, err)
	}
	logger.Int("status", resp.StatusCode).Msg("upstream request")
	return resp, nil
}

// Get performs a GET request and returns the body of a 2xx response.
func (c *Client) Get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.readBody(ctx, req, resp)
}

// readBody reads a bounded response body, returning an APIError for any
// non-2xx status.
func (c *Client) readBody(ctx context.Context, req *http.Request, resp *http.Response) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Ctx(ctx).Debug().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes))
	if err != nil {
		return nil, c.requestError(ctx, req, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &errors.APIError{
			Provider:   c.source,
			StatusCode: resp.StatusCode,
			Endpoint:   req.URL.String(),
			Message:    truncate(string(body), constants.MaxErrorBodyBytes),
		}
	}
	return body, nil
}

// requestError classifies a failure that produced no response.
func (c *Client) requestError(ctx context.Context, req *http.Request, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.NewTimeoutError(fmt.Sprintf("%s %s", req.Method, req.URL), "", err.Error())
	}
	return &errors.APIError{
		Provider: c.source,
		Endpoint: req.URL.String(),
		Message:  err.Error(),
		Err:      err,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
