// Package constants provides shared constants used throughout the lnmap codebase.
// This includes upstream endpoints, timeouts, limits, and file permissions
// that should be consistent across the application.
package constants

import "time"

// Upstream endpoints. Every one of them can be overridden through configuration.
const (
	// AmbossGraphQLURL is the public Amboss GraphQL endpoint.
	AmbossGraphQLURL = "https://api.amboss.space/graphql"

	// OneMLBaseURL is the 1ML website root.
	OneMLBaseURL = "https://1ml.com"

	// LNPlusBaseURL is the Lightning Network Plus website root.
	LNPlusBaseURL = "https://lightningnetwork.plus"

	// LNPlusAPIURL is the Lightning Network Plus JSON API root.
	LNPlusAPIURL = "https://lightningnetwork.plus/api/2"
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout bounds a single access attempt against one upstream.
	DefaultHTTPTimeout = 15 * time.Second

	// ShutdownTimeout is how long graceful shutdown may take.
	ShutdownTimeout = 5 * time.Second
)

// Limit constants define various limits and capacities
const (
	// CharacterLimit is the largest response document the server emits.
	CharacterLimit = 50_000

	// MaxErrorBodyBytes is how much of a failed upstream response body is kept in errors.
	MaxErrorBodyBytes = 200

	// MaxResponseBytes caps the size of a single upstream response body.
	MaxResponseBytes = 8 << 20

	// SwapAPIPageSize is the page size requested from the LN+ swap API.
	SwapAPIPageSize = 50

	// MaxAmbossChannels is how many channels of a node the enriched Amboss lookup keeps.
	MaxAmbossChannels = 30

	// MaxChannelIDs is how many channel ids are echoed in a lookup response.
	MaxChannelIDs = 20

	// SatsPerBTC converts bitcoin to satoshis.
	SatsPerBTC = 100_000_000
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// UserAgent is sent with every upstream request.
const UserAgent = "lnmap/1.0"
