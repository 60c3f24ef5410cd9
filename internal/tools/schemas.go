package tools

import "encoding/json"

const pubkeyProperty = `{"type":"string","pattern":"^[0-9a-f]{66}$","description":"Lightning node public key (66-char hex)"}`

var (
	lookupNodeSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "pubkey": ` + pubkeyProperty + `
  },
  "required": ["pubkey"],
  "additionalProperties": false
}`)

	topNodesSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "order": {"type": "string", "enum": ["capacity","channelcount","age","growth","availability","capacitychange","channelcountchange"], "default": "capacity", "description": "Ranking criteria to sort by"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 50, "default": 20, "description": "Number of results to return"}
  },
  "additionalProperties": false
}`)

	nodesByRankSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "min_rank": {"type": "integer", "minimum": 1, "maximum": 10, "default": 8, "description": "Minimum LN+ rank (1=Aluminium .. 10=Iridium)"},
    "max_rank": {"type": "integer", "minimum": 1, "maximum": 10, "default": 10, "description": "Maximum LN+ rank"},
    "min_capacity_btc": {"type": "number", "minimum": 0, "description": "Minimum capacity in BTC"},
    "min_channels": {"type": "integer", "minimum": 0, "description": "Minimum number of public channels"},
    "connection_type": {"type": "string", "enum": ["clearnet","tor","both"], "description": "Filter by connection type"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 100, "default": 30, "description": "Max results"},
    "page": {"type": "integer", "minimum": 1, "default": 1, "description": "Page number"}
  },
  "additionalProperties": false
}`)

	highestRatedSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "min_rank": {"type": "integer", "minimum": 0, "maximum": 10, "description": "Filter by minimum LN+ rank tier"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 50, "default": 20, "description": "Max results"},
    "page": {"type": "integer", "minimum": 1, "default": 1, "description": "Page number"}
  },
  "additionalProperties": false
}`)

	findSwapsSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "status": {"type": "string", "enum": ["pending","opening","completed"], "default": "pending", "description": "Swap status filter"},
    "shape": {"type": "string", "enum": ["dual","triangle","square","pentagon"], "description": "Swap shape"},
    "size": {"type": "string", "enum": ["xs","sm","md","lg","xl","xxl"], "description": "Channel size: xs(<500K), sm(500K-1M), md(1M-3M), lg(3M-5M), xl(5M-10M), xxl(>10M)"},
    "page": {"type": "integer", "minimum": 1, "default": 1, "description": "Page number"}
  },
  "additionalProperties": false
}`)

	findPathSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "origin": ` + pubkeyProperty + `,
    "destination": ` + pubkeyProperty + `,
    "amount_sats": {"type": "integer", "minimum": 1, "description": "Payment amount in satoshis"}
  },
  "required": ["origin", "destination", "amount_sats"],
  "additionalProperties": false
}`)

	compareNodesSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "pubkeys": {"type": "array", "items": ` + pubkeyProperty + `, "minItems": 2, "maxItems": 10, "description": "Node pubkeys to compare"}
  },
  "required": ["pubkeys"],
  "additionalProperties": false
}`)

	introspectSchema = json.RawMessage(`{
  "type": "object",
  "properties": {},
  "additionalProperties": false
}`)

	searchByAliasSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "query": {"type": "string", "minLength": 1, "maxLength": 100, "description": "Node alias or name to search for"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 50, "default": 10, "description": "Max results"}
  },
  "required": ["query"],
  "additionalProperties": false
}`)
)
