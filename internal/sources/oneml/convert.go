package oneml

import (
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/units"
)

// nodeResponse is the JSON view of a 1ML node page.
type nodeResponse struct {
	PubKey       string          `json:"pub_key"`
	Alias        string          `json:"alias"`
	Capacity     units.Number    `json:"capacity"`
	ChannelCount units.Number    `json:"channelcount"`
	Color        string          `json:"color"`
	LastUpdate   units.Timestamp `json:"last_update"`
	Addresses    []struct {
		Network string `json:"network"`
		Addr    string `json:"addr"`
	} `json:"addresses"`
	NodeRank *struct {
		Capacity     units.Number `json:"capacity"`
		ChannelCount units.Number `json:"channelcount"`
		Age          units.Number `json:"age"`
		Growth       units.Number `json:"growth"`
		Availability units.Number `json:"availability"`
	} `json:"noderank"`
}

func convertNode(resp *nodeResponse, pubkey string) *records.Node {
	node := &records.Node{
		Pubkey:       pubkey,
		Alias:        resp.Alias,
		CapacitySat:  resp.Capacity.Int64(),
		ChannelCount: resp.ChannelCount.Int64(),
		Color:        resp.Color,
		LastUpdate:   resp.LastUpdate.Ptr(),
	}
	for _, a := range resp.Addresses {
		if a.Addr == "" {
			continue
		}
		node.Addresses = append(node.Addresses, records.Address{Address: a.Addr, Network: a.Network})
	}
	if r := resp.NodeRank; r != nil {
		node.NodeRank = &records.NodeRank{
			Capacity:     r.Capacity.Int64(),
			ChannelCount: r.ChannelCount.Int64(),
			Age:          r.Age.Int64(),
			Growth:       r.Growth.Int64(),
			Availability: r.Availability.Int64(),
		}
	}
	return node.Normalize()
}
