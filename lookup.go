package lnmap

import (
	"context"

	"github.com/sourcegraph/conc/iter"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/reconciler"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

// Lookup fetches a node from every source concurrently and merges the
// results under the priority Amboss, 1ML, LN+.
//
// Failed sources are listed in the report's Errors. When no source knows the
// node the error is ErrNoData and the report still carries those errors.
// The only other error is a ValidationError for a malformed pubkey.
func (c *Client) Lookup(ctx context.Context, pubkey string) (*NodeReport, error) {
	if !records.ValidPubkey(pubkey) {
		return nil, errors.NewValidationError("pubkey", pubkey, "must be a 66-character lowercase hex public key")
	}
	ctx = logging.WithOperation(ctx, "lookup")

	res, err := c.lookup.Reconcile(ctx, []reconciler.Task[*records.Node]{
		task(c, c.amboss.Lookup(pubkey)),
		task(c, c.oneml.Lookup(pubkey)),
		task(c, c.lnplus.Lookup(pubkey)),
	})

	report := &NodeReport{Errors: errorStrings(res.Errors)}
	report.Node = res.Value
	report.Pubkey = pubkey
	if err != nil {
		return report, err
	}

	report.Node.Normalize()
	if res.Provenance != nil {
		report.Provenance = res.Provenance.Sources()
		if conflicts := res.Provenance.Conflicts(); len(conflicts) > 0 {
			logger := logging.Ctx(ctx)
			logger.Debug().Strs("fields", conflicts).Msg("sources disagree")
			logger.Trace().Msg(res.Provenance.String())
		}
	}
	report.Amboss = newAmbossDetail(res.Record(sources.AmbossID))
	report.OneML = newOneMLDetail(res.Record(sources.OneMLID))
	report.LNPlus = newLNPlusDetail(res.Record(sources.LNPlusID))
	return report, nil
}

// Compare looks up every pubkey concurrently from 1ML and LN+ and returns one
// row per pubkey, in input order. A pubkey no source knows still gets a row
// with default values.
func (c *Client) Compare(ctx context.Context, pubkeys []string) (*Comparison, error) {
	for _, pk := range pubkeys {
		if !records.ValidPubkey(pk) {
			return nil, errors.NewValidationError("pubkeys", pk, "must be a 66-character lowercase hex public key")
		}
	}
	ctx = logging.WithOperation(ctx, "compare")

	rows := iter.Map(pubkeys, func(pk *string) ComparisonRow {
		res, _ := c.compare.Reconcile(ctx, []reconciler.Task[*records.Node]{
			task(c, c.oneml.Lookup(*pk)),
			task(c, c.lnplus.Lookup(*pk)),
		})
		return newComparisonRow(*pk, res)
	})

	return &Comparison{NodeCount: len(rows), Comparison: rows}, nil
}
