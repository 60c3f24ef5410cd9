package units

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp decodes unix seconds, a numeric string, or an RFC 3339 string.
// Zero, null and unparseable values leave it unset.
type Timestamp struct {
	t time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	ts.t = time.Time{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil //nolint:nilerr // malformed values stay unset
		}
	}
	ts.t = ParseTime(raw)
	return nil
}

// Ptr returns the decoded time, or nil when unset.
func (ts Timestamp) Ptr() *time.Time {
	if ts.t.IsZero() {
		return nil
	}
	t := ts.t
	return &t
}

// ParseTime reads unix seconds or an RFC 3339 timestamp, returning the zero
// time when s is neither. Results are in UTC.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs <= 0 {
			return time.Time{}
		}
		return time.Unix(secs, 0).UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
