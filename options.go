package lnmap

import (
	"net/http"
	"net/url"
	"time"

	"github.com/agentstation/lnmap/internal/transport"
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/errors"
)

// config holds the Client configuration.
type config struct {
	ambossURL    string
	ambossAPIKey string
	onemlURL     string
	lnplusURL    string
	lnplusAPIURL string

	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
	provenance bool
}

func defaultConfig() *config {
	return &config{
		ambossURL:    constants.AmbossGraphQLURL,
		onemlURL:     constants.OneMLBaseURL,
		lnplusURL:    constants.LNPlusBaseURL,
		lnplusAPIURL: constants.LNPlusAPIURL,
		timeout:      constants.DefaultHTTPTimeout,
		userAgent:    constants.UserAgent,
		provenance:   true,
	}
}

func (c *config) apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return errors.NewConfigError("client", err.Error(), err)
		}
	}
	return nil
}

func (c *config) transportOptions() []transport.Option {
	opts := []transport.Option{transport.WithUserAgent(c.userAgent)}
	if c.httpClient != nil {
		opts = append(opts, transport.WithHTTPClient(c.httpClient))
	}
	return opts
}

// Option is a function that configures a Client.
type Option func(*config) error

// WithAmbossAPIKey sets the bearer credential sent to Amboss. An empty key
// leaves Amboss unauthenticated.
func WithAmbossAPIKey(key string) Option {
	return func(c *config) error {
		c.ambossAPIKey = key
		return nil
	}
}

// WithAmbossURL overrides the Amboss GraphQL endpoint.
func WithAmbossURL(u string) Option {
	return withURL("amboss_url", u, func(c *config) *string { return &c.ambossURL })
}

// WithOneMLURL overrides the 1ML site root.
func WithOneMLURL(u string) Option {
	return withURL("oneml_url", u, func(c *config) *string { return &c.onemlURL })
}

// WithLNPlusURL overrides the LN+ site root.
func WithLNPlusURL(u string) Option {
	return withURL("lnplus_url", u, func(c *config) *string { return &c.lnplusURL })
}

// WithLNPlusAPIURL overrides the LN+ API root.
func WithLNPlusAPIURL(u string) Option {
	return withURL("lnplus_api_url", u, func(c *config) *string { return &c.lnplusAPIURL })
}

func withURL(field, raw string, target func(*config) *string) Option {
	return func(c *config) error {
		if raw == "" {
			return nil
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &errors.ValidationError{Field: field, Value: raw, Message: "must be an absolute URL"}
		}
		*target(c) = raw
		return nil
	}
}

// WithTimeout bounds each upstream attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return &errors.ValidationError{Field: "timeout", Value: d, Message: "must be positive"}
		}
		c.timeout = d
		return nil
	}
}

// WithHTTPClient replaces the HTTP client used for every upstream.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		c.httpClient = hc
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		if ua != "" {
			c.userAgent = ua
		}
		return nil
	}
}

// WithProvenance configures whether lookups report which source supplied
// each field.
func WithProvenance(enabled bool) Option {
	return func(c *config) error {
		c.provenance = enabled
		return nil
	}
}
