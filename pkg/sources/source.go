// Package sources defines the identity of upstream data sources and the
// primary/secondary access chain every source query runs through.
//
// A source query ends in exactly one of three outcomes: Found, NotFound or
// Failed. NotFound is data, not an error: the upstream explicitly said the
// resource does not exist, and no fallback is attempted.
//
// Example usage:
//
//	chain := sources.Chain[*records.Node]{
//	    Source:    sources.OneMLID,
//	    Primary:   fetchJSON,
//	    Secondary: scrapeHTML,
//	    Timeout:   15 * time.Second,
//	}
//	outcome := chain.Run(ctx)
//	if outcome.Found() {
//	    fmt.Println(outcome.Value.Alias)
//	}
package sources

import "slices"

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source name.
func (id ID) String() string {
	return string(id)
}

// Known source ids.
const (
	AmbossID ID = "amboss"
	OneMLID  ID = "oneml"
	LNPlusID ID = "lnplus"
)

// IDs returns all known sources in lookup priority order, highest first.
func IDs() []ID {
	return []ID{
		AmbossID,
		OneMLID,
		LNPlusID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}
