package amboss

import (
	"github.com/agentstation/lnmap/pkg/constants"
	"github.com/agentstation/lnmap/pkg/records"
)

// convertNode converts a getNode response to a node record. It returns nil
// when Amboss does not know the node.
func convertNode(resp *nodeResponse, pubkey string) *records.Node {
	n := resp.GetNode
	if n == nil {
		return nil
	}

	node := &records.Node{Pubkey: pubkey}

	if gi := n.GraphInfo; gi != nil {
		if info := gi.Node; info != nil {
			node.Alias = info.Alias
			node.Color = info.Color
			node.LastUpdate = info.LastUpdate.Ptr()
			for _, a := range info.Addresses {
				node.Addresses = append(node.Addresses, records.Address{Address: a.Addr, Network: a.Network})
			}
		}
		if ch := gi.Channels; ch != nil {
			node.CapacitySat = ch.TotalCapacity.Int64()
			node.ChannelCount = ch.NumChannels.Int64()
			if ch.ChannelList != nil {
				list := ch.ChannelList.List
				if len(list) > constants.MaxAmbossChannels {
					list = list[:constants.MaxAmbossChannels]
				}
				for _, c := range list {
					if c.ShortChannelID != "" {
						node.ChannelIDs = append(node.ChannelIDs, c.ShortChannelID)
					}
				}
			}
		}
	}

	if s := n.Socials; s != nil && s.Info != nil {
		socials := make(map[string]string)
		for kind, v := range map[string]*string{
			"email":             s.Info.Email,
			"twitter":           s.Info.Twitter,
			"website":           s.Info.Website,
			"lightning_address": s.Info.LightningAddress,
		} {
			if v != nil && *v != "" {
				socials[kind] = *v
			}
		}
		if len(socials) > 0 {
			node.Socials = socials
		}
	}

	if a := n.Amboss; a != nil && a.IsClaimed != nil {
		claimed := *a.IsClaimed
		node.IsClaimed = &claimed
	}

	return node.Normalize()
}

func convertSearch(resp *searchResponse, limit int) []*records.Node {
	if resp.Search == nil || resp.Search.NodeResults == nil {
		return nil
	}
	results := resp.Search.NodeResults.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	nodes := make([]*records.Node, 0, len(results))
	for _, r := range results {
		if !records.ValidPubkey(r.Pubkey) {
			continue
		}
		nodes = append(nodes, (&records.Node{
			Pubkey:       r.Pubkey,
			Alias:        r.Alias,
			CapacitySat:  r.Capacity.Int64(),
			ChannelCount: r.ChannelAmount.Int64(),
		}).Normalize())
	}
	return nodes
}
