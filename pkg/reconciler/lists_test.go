package reconciler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/internal/utils/ptr"
	"github.com/agentstation/lnmap/pkg/reconciler"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/sources"
)

func TestMergeLists(t *testing.T) {
	r := newNodeReconciler(t, reconciler.WithSourceOrder(sources.AmbossID, sources.LNPlusID))

	pkA := "02" + "a1" + testPubkey[4:]
	pkB := "03" + "b2" + testPubkey[4:]
	pkC := "02" + "c3" + testPubkey[4:]

	amboss := []*records.Node{
		{Pubkey: pkA, Alias: "Alpha", CapacitySat: 1000},
		{Pubkey: pkB, Alias: "Beta"},
	}
	lnplus := []*records.Node{
		{Pubkey: pkC, Alias: "Gamma"},
		{Pubkey: pkA, Alias: "alpha-lnplus", ChannelCount: 7, RankTier: ptr.To(9), RankTierName: "Platinum"},
		{Pubkey: ""},
	}

	entries, errs := r.MergeLists([]sources.Outcome[[]*records.Node]{
		sources.Found(sources.LNPlusID, sources.Primary, lnplus),
		sources.Found(sources.AmbossID, sources.Primary, amboss),
	}, reconciler.NodeKey)

	assert.Empty(t, errs)
	require.Len(t, entries, 3)

	assert.Equal(t, pkA, entries[0].Key)
	assert.Equal(t, "Alpha", entries[0].Value.Alias)
	assert.Equal(t, int64(1000), entries[0].Value.CapacitySat)
	assert.Equal(t, int64(7), entries[0].Value.ChannelCount)
	assert.Equal(t, "Platinum", entries[0].Value.RankTierName)
	assert.Equal(t, []sources.ID{sources.AmbossID, sources.LNPlusID}, entries[0].Sources)

	assert.Equal(t, pkB, entries[1].Key)
	assert.Equal(t, []sources.ID{sources.AmbossID}, entries[1].Sources)

	assert.Equal(t, pkC, entries[2].Key)
	assert.Equal(t, []sources.ID{sources.LNPlusID}, entries[2].Sources)
}

func TestMergeListsReportsFailures(t *testing.T) {
	r := newNodeReconciler(t, reconciler.WithSourceOrder(sources.AmbossID, sources.LNPlusID))

	entries, errs := r.MergeLists([]sources.Outcome[[]*records.Node]{
		sources.Failed[[]*records.Node](sources.AmbossID, sources.Primary, errors.New("GraphQL error: nope")),
		sources.Found(sources.LNPlusID, sources.Primary, []*records.Node{{Pubkey: testPubkey, Alias: "solo"}}),
	}, reconciler.NodeKey)

	require.Len(t, entries, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "amboss: GraphQL error: nope", errs[0].String())
}

func TestSorted(t *testing.T) {
	order := reconciler.SourceOrder{sources.AmbossID, sources.OneMLID}
	in := []sources.Outcome[int]{
		{Source: "other"},
		{Source: sources.OneMLID},
		{Source: sources.AmbossID},
	}
	out := reconciler.Sorted(order, in)

	assert.Equal(t, sources.AmbossID, out[0].Source)
	assert.Equal(t, sources.OneMLID, out[1].Source)
	assert.Equal(t, sources.ID("other"), out[2].Source)
	assert.Equal(t, sources.ID("other"), in[0].Source, "input is not modified")
}
