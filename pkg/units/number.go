package units

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number is a non-negative integer that decodes from a JSON number, a
// string-encoded number, or null. Upstream GraphQL schemas encode large
// satoshi amounts as strings; anything unparseable decodes as 0.
type Number int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil //nolint:nilerr // malformed values degrade to zero
		}
		data = []byte(s)
	}
	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*n = Number(max(v, 0))
		return nil
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*n = Number(clamp(f))
		return nil
	}
	*n = 0
	return nil
}

// Int64 returns n as an int64.
func (n Number) Int64() int64 {
	return int64(n)
}
