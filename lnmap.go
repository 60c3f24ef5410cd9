// Package lnmap provides the main entry point for lnmap, a Lightning Network
// node directory that reconciles data from several public sources.
//
// A Client queries Amboss, 1ML and Lightning Network Plus concurrently,
// tolerates the failure of any of them and merges what they return under a
// fixed source priority. Failures are reported next to the data, never
// instead of it.
//
// Example usage:
//
//	client, err := lnmap.New(lnmap.WithAmbossAPIKey(os.Getenv("AMBOSS_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := client.Lookup(ctx, pubkey)
//	if errors.Is(err, lnmap.ErrNoData) {
//	    fmt.Println("no source knows this node")
//	}
//	for _, e := range report.Errors {
//	    fmt.Println("partial failure:", e)
//	}
package lnmap

import (
	"context"
	"time"

	"github.com/agentstation/lnmap/internal/sources/amboss"
	"github.com/agentstation/lnmap/internal/sources/lnplus"
	"github.com/agentstation/lnmap/internal/sources/oneml"
	"github.com/agentstation/lnmap/pkg/reconciler"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

// ErrNoData is returned when no source produced a record. It is an expected
// outcome, not a failure.
var ErrNoData = reconciler.ErrNoData

// Client runs the named node directory operations.
type Client struct {
	config *config

	amboss *amboss.Client
	oneml  *oneml.Client
	lnplus *lnplus.Client

	// lookup merges full node lookups; compare merges 1ML and LN+ only.
	lookup  *reconciler.Reconciler[records.Node]
	compare *reconciler.Reconciler[records.Node]
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}

	topts := cfg.transportOptions()
	c := &Client{
		config: cfg,
		amboss: amboss.NewClient(cfg.ambossURL, cfg.ambossAPIKey, topts...),
		oneml:  oneml.NewClient(cfg.onemlURL, topts...),
		lnplus: lnplus.NewClient(cfg.lnplusURL, cfg.lnplusAPIURL, topts...),
	}

	var err error
	c.lookup, err = reconciler.New(reconciler.NodeSchema(),
		reconciler.WithProvenance(cfg.provenance))
	if err != nil {
		return nil, err
	}
	c.compare, err = reconciler.New(reconciler.NodeSchema(),
		reconciler.WithSourceOrder(sources.OneMLID, sources.LNPlusID),
		reconciler.WithProvenance(false))
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Timeout returns the per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.config.timeout
}

// HasAmbossAPIKey reports whether Amboss requests are authenticated.
func (c *Client) HasAmbossAPIKey() bool {
	return c.amboss.HasAPIKey()
}

// run executes a chain under the configured per-attempt timeout.
func run[T any](ctx context.Context, c *Client, chain sources.Chain[T]) sources.Outcome[T] {
	chain.Timeout = c.config.timeout
	return chain.Run(ctx)
}

// task wraps a chain as a reconciler task.
func task[T any](c *Client, chain sources.Chain[T]) reconciler.Task[T] {
	return reconciler.Task[T]{
		Source: chain.Source,
		Run: func(ctx context.Context) sources.Outcome[T] {
			return run(ctx, c, chain)
		},
	}
}

// single builds a one-channel chain around fn.
func single[T any](source sources.ID, fn sources.Attempt[T]) sources.Chain[T] {
	return sources.Chain[T]{Source: source, Primary: fn}
}

// attemptContext bounds one upstream call made outside a chain.
func (c *Client) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.config.timeout)
}
