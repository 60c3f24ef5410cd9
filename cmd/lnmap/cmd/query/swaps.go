package query

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/lnmap/internal/appcontext"
	"github.com/agentstation/lnmap/internal/tools"
)

// NewSwapsCommand creates the swaps command.
func NewSwapsCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "swaps",
		GroupID: "query",
		Short:   "Find LN+ liquidity swaps",
		Args:    cobra.NoArgs,
		Example: `  lnmap swaps
  lnmap swaps --shape triangle --size lg
  lnmap swaps --status completed --page 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := args{}
			if err := a.fromFlags(cmd, map[string]string{
				"status": "status",
				"shape":  "shape",
				"size":   "size",
				"page":   "page",
			}); err != nil {
				return err
			}
			return call(cmd, app, tools.FindSwaps, a)
		},
	}
	cmd.Flags().String("status", "pending", "swap status: pending, opening, completed")
	cmd.Flags().String("shape", "", "participant count: dual, triangle, square, pentagon")
	cmd.Flags().String("size", "", "capacity bucket: xs, sm, md, lg, xl, xxl")
	cmd.Flags().Int("page", 1, "page to read")
	return cmd
}
