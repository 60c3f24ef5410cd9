package provenance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/pkg/provenance"
	"github.com/agentstation/lnmap/pkg/sources"
)

func TestTracker(t *testing.T) {
	tr := provenance.NewTracker(true)
	tr.Track("alias", sources.AmbossID, "ACINQ")
	tr.Offer("alias", sources.OneMLID, "acinq")
	tr.Offer("capacity_sat", sources.OneMLID, int64(5)) // no winner yet, ignored
	tr.Track("channel_count", sources.OneMLID, int64(42))

	prov, ok := tr.Find("alias")
	require.True(t, ok)
	assert.Equal(t, sources.AmbossID, prov.Source)
	assert.True(t, prov.Conflicting())

	_, ok = tr.Find("capacity_sat")
	assert.False(t, ok)

	m := tr.Map()
	assert.Equal(t, map[string]sources.ID{
		"alias":         sources.AmbossID,
		"channel_count": sources.OneMLID,
	}, m.Sources())
	assert.Equal(t, []string{"alias", "channel_count"}, m.Fields())
}

func TestTrackerDisabled(t *testing.T) {
	tr := provenance.NewTracker(false)
	tr.Track("alias", sources.AmbossID, "x")
	assert.Nil(t, tr.Map())
}

func TestMapCopyIsIndependent(t *testing.T) {
	tr := provenance.NewTracker(true)
	tr.Track("alias", sources.AmbossID, "a")
	m := tr.Map()
	tr.Offer("alias", sources.LNPlusID, "b")

	assert.Empty(t, m["alias"].Alternatives)
}

func TestConflictingIgnoresEqualValues(t *testing.T) {
	p := provenance.Provenance{
		Field:        "color",
		Source:       sources.AmbossID,
		Value:        "#3399ff",
		Alternatives: []provenance.Candidate{{Source: sources.OneMLID, Value: "#3399ff"}},
	}
	assert.False(t, p.Conflicting())
}

func TestReport(t *testing.T) {
	tr := provenance.NewTracker(true)
	tr.Track("alias", sources.AmbossID, "ACINQ")
	tr.Offer("alias", sources.LNPlusID, "Acinq")
	m := tr.Map()

	report := m.String()
	assert.Contains(t, report, "alias: ACINQ (from amboss)")
	assert.Contains(t, report, "- Acinq from lnplus")
}

func TestConflicts(t *testing.T) {
	tr := provenance.NewTracker(true)
	tr.Track("alias", sources.AmbossID, "ACINQ")
	tr.Offer("alias", sources.LNPlusID, "Acinq")
	tr.Track("color", sources.AmbossID, "#49daaa")
	tr.Offer("color", sources.OneMLID, "#49daaa")

	assert.Equal(t, []string{"alias"}, tr.Map().Conflicts())
}
