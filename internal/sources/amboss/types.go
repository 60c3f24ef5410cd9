package amboss

import "github.com/agentstation/lnmap/pkg/units"

// nodeResponse is the data member of a getNode query. Every level is
// optional; the reduced query leaves socials and amboss out entirely.
type nodeResponse struct {
	GetNode *struct {
		GraphInfo *struct {
			Node *struct {
				Alias      string          `json:"alias"`
				Color      string          `json:"color"`
				PubKey     string          `json:"pub_key"`
				LastUpdate units.Timestamp `json:"last_update"`
				Addresses  []struct {
					Addr    string `json:"addr"`
					Network string `json:"network"`
				} `json:"addresses"`
			} `json:"node"`
			Channels *struct {
				ChannelList *struct {
					List []channelResponse `json:"list"`
				} `json:"channel_list"`
				NumChannels   units.Number `json:"num_channels"`
				TotalCapacity units.Number `json:"total_capacity"`
			} `json:"channels"`
		} `json:"graph_info"`
		Socials *struct {
			Info *struct {
				Email            *string `json:"email"`
				Twitter          *string `json:"twitter"`
				Website          *string `json:"website"`
				LightningAddress *string `json:"lightning_address"`
			} `json:"info"`
		} `json:"socials"`
		Amboss *struct {
			IsClaimed *bool `json:"is_claimed"`
		} `json:"amboss"`
	} `json:"getNode"`
}

type channelResponse struct {
	ShortChannelID string       `json:"short_channel_id"`
	Capacity       units.Number `json:"capacity"`
	Node1Pub       string       `json:"node1_pub"`
	Node2Pub       string       `json:"node2_pub"`
}

type searchResponse struct {
	Search *struct {
		NodeResults *struct {
			NumResults units.Number `json:"num_results"`
			Results    []struct {
				Alias         string       `json:"alias"`
				Pubkey        string       `json:"pubkey"`
				Capacity      units.Number `json:"capacity"`
				ChannelAmount units.Number `json:"channel_amount"`
			} `json:"results"`
		} `json:"node_results"`
	} `json:"search"`
}
