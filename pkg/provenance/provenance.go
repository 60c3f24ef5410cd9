// Package provenance provides field-level tracking of which source supplied
// each value of a merged record.
//
// Provenance lives only as long as the response it describes. It is never
// written to disk.
package provenance

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/agentstation/lnmap/pkg/sources"
)

// Provenance tracks the origin of one merged field value.
type Provenance struct {
	Field  string     `json:"field" yaml:"field"`
	Source sources.ID `json:"source" yaml:"source"`
	Value  any        `json:"value" yaml:"value"`

	// Alternatives are values lower-priority sources also supplied.
	Alternatives []Candidate `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Candidate is a value offered by a source that did not win the field.
type Candidate struct {
	Source sources.ID `json:"source" yaml:"source"`
	Value  any        `json:"value" yaml:"value"`
}

// Conflicting reports whether any alternative differs from the chosen value.
func (p Provenance) Conflicting() bool {
	for _, alt := range p.Alternatives {
		if !reflect.DeepEqual(alt.Value, p.Value) {
			return true
		}
	}
	return false
}

// Map tracks provenance for the fields of one record, keyed by field name.
type Map map[string]Provenance

// Sources returns the winning source of each field.
func (m Map) Sources() map[string]sources.ID {
	out := make(map[string]sources.ID, len(m))
	for field, p := range m {
		out[field] = p.Source
	}
	return out
}

// Fields returns the tracked field names in sorted order.
func (m Map) Fields() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Conflicts returns the sorted names of fields whose sources disagreed.
func (m Map) Conflicts() []string {
	var fields []string
	for _, field := range m.Fields() {
		if m[field].Conflicting() {
			fields = append(fields, field)
		}
	}
	return fields
}

// Tracker records provenance while a record is being merged.
type Tracker interface {
	// Track records that source supplied the winning value for field.
	Track(field string, source sources.ID, value any)

	// Offer records a value from a source that lost field to a higher-priority one.
	Offer(field string, source sources.ID, value any)

	// Find retrieves provenance for a specific field
	Find(field string) (Provenance, bool)

	// Map returns a copy of the collected provenance.
	Map() Map
}

// tracker is the default implementation. It is not safe for concurrent use;
// merging happens after every source task has settled.
type tracker struct {
	provenance Map
	enabled    bool
}

// NewTracker creates a new provenance tracker. A disabled tracker records nothing.
func NewTracker(enabled bool) Tracker {
	return &tracker{
		provenance: make(Map),
		enabled:    enabled,
	}
}

// Track records provenance for a field.
func (p *tracker) Track(field string, source sources.ID, value any) {
	if !p.enabled {
		return
	}
	p.provenance[field] = Provenance{Field: field, Source: source, Value: value}
}

// Offer records a losing candidate for a field that already has a winner.
func (p *tracker) Offer(field string, source sources.ID, value any) {
	if !p.enabled {
		return
	}
	prov, ok := p.provenance[field]
	if !ok {
		return
	}
	prov.Alternatives = append(prov.Alternatives, Candidate{Source: source, Value: value})
	p.provenance[field] = prov
}

// Find retrieves provenance for a specific field.
func (p *tracker) Find(field string) (Provenance, bool) {
	prov, ok := p.provenance[field]
	return prov, ok
}

// Map returns the complete provenance map.
func (p *tracker) Map() Map {
	if !p.enabled {
		return nil
	}

	result := make(Map, len(p.provenance))
	for k, v := range p.provenance {
		v.Alternatives = append([]Candidate(nil), v.Alternatives...)
		result[k] = v
	}
	return result
}

// String generates a human-readable provenance report.
func (m Map) String() string {
	var sb strings.Builder

	sb.WriteString("Provenance Report\n")
	sb.WriteString("=================\n\n")

	for _, field := range m.Fields() {
		prov := m[field]
		sb.WriteString(fmt.Sprintf("  %s: %v (from %s)\n", field, prov.Value, prov.Source))
		if prov.Conflicting() {
			for _, alt := range prov.Alternatives {
				sb.WriteString(fmt.Sprintf("    - %v from %s\n", alt.Value, alt.Source))
			}
		}
	}

	return sb.String()
}
