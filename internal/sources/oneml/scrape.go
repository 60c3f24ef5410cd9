package oneml

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/units"
)

var (
	nodeHrefPattern     = regexp.MustCompile(`/node/([0-9a-f]{66})`)
	capacityPattern     = regexp.MustCompile(`Capacity\s*([\d.]+)\s*BTC`)
	channelCountPattern = regexp.MustCompile(`(?i)Channel\s*Count\s*(\d[\d,]*)`)
	colorPattern        = regexp.MustCompile(`(?i)Color\s*(#[0-9a-f]{6})`)
)

// parseTopNodes reads the node cards of a ranked listing.
func parseTopNodes(doc *goquery.Document, limit int) []*records.Node {
	var nodes []*records.Node
	doc.Find("li.list-group-item").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if limit > 0 && len(nodes) >= limit {
			return false
		}

		link := card.Find(`a[href^="/node/"]`).First()
		m := nodeHrefPattern.FindStringSubmatch(link.AttrOr("href", ""))
		if m == nil {
			return true
		}
		pubkey := m[1]

		alias := strings.TrimSpace(link.Find("h2").Text())
		if alias == "" {
			alias = strings.TrimSpace(link.AttrOr("title", ""))
		}
		if alias == "" {
			alias = records.ShortPubkey(pubkey, 16)
		}

		node := &records.Node{Pubkey: pubkey, Alias: alias}
		scanStats(card.Find("ul.list-unstyled li"), node)
		nodes = append(nodes, node.Normalize())
		return true
	})
	return nodes
}

// parseNodePage reads a node page. It returns nil when the page carries no
// node heading.
func parseNodePage(doc *goquery.Document, pubkey string) *records.Node {
	alias := strings.TrimSpace(doc.Find("h1").First().Text())
	alias = strings.TrimSpace(strings.TrimPrefix(alias, "Node "))
	if alias == "" {
		return nil
	}

	node := &records.Node{Pubkey: pubkey, Alias: alias}
	scanStats(doc.Find("ul.list-unstyled li, dl"), node)

	doc.Find("span.address, code.address").Each(func(_ int, s *goquery.Selection) {
		addr := strings.TrimSpace(s.Text())
		if addr != "" {
			node.Addresses = append(node.Addresses, records.Address{Address: addr, Network: "tcp"})
		}
	})
	return node.Normalize()
}

// scanStats fills capacity, channel count and color from labelled list items.
func scanStats(items *goquery.Selection, node *records.Node) {
	items.Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if m := capacityPattern.FindStringSubmatch(text); m != nil {
			node.CapacitySat = units.ParseCapacity(m[1] + " BTC")
		}
		if m := channelCountPattern.FindStringSubmatch(text); m != nil {
			node.ChannelCount = units.ParseCount(m[1])
		}
		if m := colorPattern.FindStringSubmatch(text); m != nil {
			node.Color = strings.ToLower(m[1])
		}
	})
}
