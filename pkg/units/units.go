// Package units converts the numeric text found in upstream payloads into
// canonical integer values.
//
// Every parser in this package is total: malformed or unmatched input yields
// the zero value, never an error. Markup drift upstream therefore degrades a
// field to its default instead of failing a whole record.
package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/lnmap/pkg/constants"
)

var (
	btcPattern    = regexp.MustCompile(`(?i)~?(\d+(?:\.\d+)?|\.\d+)\s*BTC`)
	satPattern    = regexp.MustCompile(`(?i)(\d[\d,]*)(?:\.\d+)?\s*SAT`)
	suffixPattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*([KMB])?\s*SAT`)
	countPattern  = regexp.MustCompile(`\d[\d,]*`)
	rankPattern   = regexp.MustCompile(`(?i)Rank[:\s]*(\d+)\s*(?:/\s*(\w+))?`)
	connPattern   = regexp.MustCompile(`(?i)Connection[:\s]*(.*)`)
)

// ParseCapacity extracts a capacity in satoshis from text such as
// "~0.5 BTC" or "123,456 SAT". BTC amounts are rounded to the nearest satoshi.
func ParseCapacity(text string) int64 {
	if m := btcPattern.FindStringSubmatch(text); m != nil {
		return BTCToSats(parseFloat(m[1]))
	}
	if m := satPattern.FindStringSubmatch(text); m != nil {
		return parseInt(m[1])
	}
	return 0
}

// ParseSatAmount extracts an amount such as "2.5M SAT" or "500 K sat".
// The K, M and B suffixes multiply by a thousand, a million and a billion.
func ParseSatAmount(text string) int64 {
	m := suffixPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	val := parseFloat(m[1])
	switch strings.ToUpper(m[2]) {
	case "K":
		val *= 1e3
	case "M":
		val *= 1e6
	case "B":
		val *= 1e9
	}
	return clamp(math.Round(val))
}

// ParseCount extracts the first digit run in text, ignoring grouping commas.
func ParseCount(text string) int64 {
	m := countPattern.FindString(text)
	if m == "" {
		return 0
	}
	return parseInt(m)
}

// ParseRank reads a "Rank: 8 / Gold" descriptor. The name is empty when the
// descriptor carries only the number. ok is false when no rank is present.
func ParseRank(text string) (rank int, name string, ok bool) {
	m := rankPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, m[2], true
}

// ParseConnection returns the value of a "Connection: clearnet" descriptor,
// or the empty string when the label is absent.
func ParseConnection(text string) string {
	m := connPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// BTCToSats converts a bitcoin amount to satoshis, rounding to the nearest
// integer. Negative and non-finite inputs yield 0.
func BTCToSats(btc float64) int64 {
	return clamp(math.Round(btc * constants.SatsPerBTC))
}

// SatsToBTC converts satoshis to bitcoin.
func SatsToBTC(sats int64) float64 {
	return float64(sats) / constants.SatsPerBTC
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func clamp(f float64) int64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
