package query

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/tools"
	"github.com/agentstation/lnmap/pkg/errors"
)

// NewNodeCommand creates the node command.
func NewNodeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "node <pubkey>",
		GroupID: "query",
		Short:   "Look up one node across all sources",
		Args:    cobra.ExactArgs(1),
		Example: `  lnmap node 03864ef025fde8fb587d989186ce6a4a186895ee44a926bfc370e2c366597a3f8f
  lnmap node 0386...3f8f -o yaml`,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return call(cmd, app, tools.LookupNode, args{"pubkey": argv[0]})
		},
	}
}

// NewTopCommand creates the top command.
func NewTopCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "top",
		GroupID: "query",
		Short:   "List the top nodes from 1ML",
		Args:    cobra.NoArgs,
		Example: `  lnmap top
  lnmap top --order channelcount --limit 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := args{}
			if err := a.fromFlags(cmd, map[string]string{"order": "order", "limit": "limit"}); err != nil {
				return err
			}
			return call(cmd, app, tools.TopNodes, a)
		},
	}
	cmd.Flags().String("order", "capacity", "ranking: capacity, channelcount, age, growth, availability, capacitychange, channelcountchange")
	cmd.Flags().Int("limit", 20, "number of nodes (1-50)")
	return cmd
}

// NewRankCommand creates the rank command.
func NewRankCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rank",
		GroupID: "query",
		Short:   "Find nodes within an LN+ rank range",
		Args:    cobra.NoArgs,
		Example: `  lnmap rank --min-rank 9
  lnmap rank --min-rank 5 --max-rank 7 --connection tor --min-channels 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := args{}
			if err := a.fromFlags(cmd, map[string]string{
				"min-rank":     "min_rank",
				"max-rank":     "max_rank",
				"min-capacity": "min_capacity_btc",
				"min-channels": "min_channels",
				"connection":   "connection_type",
				"limit":        "limit",
				"page":         "page",
			}); err != nil {
				return err
			}
			return call(cmd, app, tools.NodesByRank, a)
		},
	}
	cmd.Flags().Int("min-rank", 8, "lowest rank (1-10)")
	cmd.Flags().Int("max-rank", 10, "highest rank (1-10)")
	cmd.Flags().Float64("min-capacity", 0, "minimum capacity in BTC")
	cmd.Flags().Int64("min-channels", 0, "minimum channel count")
	cmd.Flags().String("connection", "", "connection type: clearnet, tor, both")
	cmd.Flags().Int("limit", 30, "number of nodes (1-100)")
	cmd.Flags().Int("page", 1, "first page to read")
	return cmd
}

// NewRatedCommand creates the rated command.
func NewRatedCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rated",
		GroupID: "query",
		Short:   "List the highest rated LN+ nodes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := args{}
			if err := a.fromFlags(cmd, map[string]string{"min-rank": "min_rank", "limit": "limit", "page": "page"}); err != nil {
				return err
			}
			return call(cmd, app, tools.HighestRated, a)
		},
	}
	cmd.Flags().Int("min-rank", 0, "lowest rank to include (0 for the prime list)")
	cmd.Flags().Int("limit", 20, "number of nodes (1-50)")
	cmd.Flags().Int("page", 1, "page to read")
	return cmd
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <pubkey> <pubkey>...",
		GroupID: "query",
		Short:   "Compare two to ten nodes side by side",
		Args:    cobra.RangeArgs(2, 10),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return call(cmd, app, tools.CompareNodes, args{"pubkeys": argv})
		},
	}
}

// NewSearchCommand creates the search command.
func NewSearchCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <query>",
		GroupID: "query",
		Short:   "Search nodes by alias",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			a := args{"query": argv[0]}
			if err := a.fromFlags(cmd, map[string]string{"limit": "limit"}); err != nil {
				return err
			}
			return call(cmd, app, tools.SearchByAlias, a)
		},
	}
	cmd.Flags().Int("limit", 10, "number of nodes (1-50)")
	return cmd
}

// NewPathCommand creates the path command.
func NewPathCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "path <origin> <destination> <amount-sats>",
		GroupID: "query",
		Short:   "Find a payment path between two nodes",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, argv []string) error {
			amount, err := strconv.ParseInt(argv[2], 10, 64)
			if err != nil {
				return &errors.ValidationError{Field: "amount_sats", Value: argv[2], Message: "must be a whole number of satoshis"}
			}
			return call(cmd, app, tools.FindPath, args{
				"origin":      argv[0],
				"destination": argv[1],
				"amount_sats": amount,
			})
		},
	}
}

// NewIntrospectCommand creates the introspect command.
func NewIntrospectCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "introspect",
		GroupID: "query",
		Short:   "Summarize the Amboss GraphQL schema",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(cmd, app, tools.Introspect, args{})
		},
	}
}
