package lnplus

import (
	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/units"
)

// swapResponse is one element of the get_swaps API response.
type swapResponse struct {
	ID                        units.Number `json:"id"`
	Status                    string       `json:"status"`
	ParticipantMaxCount       units.Number `json:"participant_max_count"`
	ParticipantAppliedCount   units.Number `json:"participant_applied_count"`
	CapacitySats              units.Number `json:"capacity_sats"`
	ClearnetConnectionAllowed bool         `json:"clearnet_connection_allowed"`
	TorConnectionAllowed      bool         `json:"tor_connection_allowed"`
}

func convertSwap(s *swapResponse) *records.Swap {
	total := int(s.ParticipantMaxCount.Int64())
	swap := &records.Swap{
		ID:                  s.ID.Int64(),
		Status:              records.SwapStatus(s.Status),
		Shape:               classify.ShapeForParticipants(total),
		CapacitySat:         s.CapacitySats.Int64(),
		ParticipantsCurrent: int(s.ParticipantAppliedCount.Int64()),
		ParticipantsTotal:   total,
		ConnectionType:      classify.ConnectionFromFlags(s.ClearnetConnectionAllowed, s.TorConnectionAllowed),
	}
	if swap.Status == "" {
		swap.Status = "unknown"
	}
	return swap.Normalize()
}
