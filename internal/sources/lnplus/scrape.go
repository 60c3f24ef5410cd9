package lnplus

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/lnmap/pkg/classify"
	"github.com/agentstation/lnmap/pkg/records"
	"github.com/agentstation/lnmap/pkg/units"
)

var (
	nodeHrefPattern = regexp.MustCompile(`/nodes/([0-9a-f]{66})`)
	swapHrefPattern = regexp.MustCompile(`/swaps/(\d+)`)
	nonDigits       = regexp.MustCompile(`[^\d]`)
)

// parseProfile reads a node profile page. It returns nil when the page has
// no node title, which is how LN+ renders unknown nodes.
func parseProfile(doc *goquery.Document, pubkey string) *records.Node {
	alias := strings.TrimSpace(doc.Find(".node-title").First().Text())
	if alias == "" {
		return nil
	}

	node := &records.Node{Pubkey: pubkey, Alias: alias}
	readNodeFields(doc.Selection, node)

	var ratings records.Ratings
	var rated bool
	doc.Find(".fa-smile").Each(func(_ int, s *goquery.Selection) {
		if n, ok := iconCount(s); ok {
			ratings.Positive, rated = n, true
		}
	})
	doc.Find(".fa-frown").Each(func(_ int, s *goquery.Selection) {
		if n, ok := iconCount(s); ok {
			ratings.Negative, rated = n, true
		}
	})
	if rated {
		node.Ratings = &ratings
	}
	return node.Normalize()
}

// parseNodeCards reads the node cards of a listing page.
func parseNodeCards(doc *goquery.Document, baseURL string) []*records.Node {
	var nodes []*records.Node
	seen := make(map[string]bool)
	doc.Find("[class*='min-w-0']").Each(func(_ int, card *goquery.Selection) {
		link := card.Find(".node-title a").First()
		if link.Length() == 0 {
			return
		}
		href := link.AttrOr("href", "")
		m := nodeHrefPattern.FindStringSubmatch(href)
		if m == nil || seen[m[1]] {
			return
		}
		seen[m[1]] = true

		node := &records.Node{
			Pubkey:     m[1],
			Alias:      strings.TrimSpace(link.Text()),
			ProfileURL: baseURL + href,
		}
		readNodeFields(card, node)
		nodes = append(nodes, node.Normalize())
	})
	return nodes
}

// readNodeFields fills the fields shared by profile pages and listing cards.
func readNodeFields(s *goquery.Selection, node *records.Node) {
	// The first .node-capacity element is the label; the last holds the value.
	node.CapacitySat = units.ParseCapacity(text(s.Find(".node-capacity").Last()))
	node.ChannelCount = units.ParseCount(text(s.Find(".node-channels").First()))
	node.ConnectionType = classify.ParseConnection(units.ParseConnection(text(s.Find(".node-connection").First())))

	if rank, name, ok := units.ParseRank(text(s.Find(".rank").First())); ok {
		node.RankTier = &rank
		node.RankTierName = name
		if node.RankTierName == "" {
			node.RankTierName = classify.TierName(rank)
		}
	}

	node.MinChannelSizeSat = units.ParseSatAmount(text(s.Find(".min-channel-size").First()))
	node.LiquidityCreditsSat = units.ParseSatAmount(text(s.Find(".liquidity_credits").First()))
}

// parseSwapCards reads the swap cards of the swaps page. The page only lists
// swaps of the requested status, so every card gets status.
func parseSwapCards(doc *goquery.Document, status records.SwapStatus) []*records.Swap {
	var swaps []*records.Swap
	doc.Find(".liquidity_swap_card").Each(func(_ int, card *goquery.Selection) {
		m := swapHrefPattern.FindStringSubmatch(card.Find(`a[href^="/swaps/"]`).First().AttrOr("href", ""))
		if m == nil {
			return
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return
		}

		var capacity int64
		if digits := nonDigits.ReplaceAllString(card.Find(".text-2xl.font-bold").Text(), ""); digits != "" {
			capacity, _ = strconv.ParseInt(digits, 10, 64)
		}
		waiting := atoi(text(card.Find(".spaces_waiting")))
		total := atoi(text(card.Find(".spaces_total")))

		swap := &records.Swap{
			ID:                  id,
			Status:              status,
			Shape:               parseShape(text(card.Find(".capacity_title_shape"))),
			CapacitySat:         capacity,
			ParticipantsCurrent: total - waiting,
			ParticipantsTotal:   total,
			ConnectionType:      classify.ParseConnection(text(card.Find(".capacity_title_type"))),
		}
		swaps = append(swaps, swap.Normalize())
	})
	return swaps
}

// parseShape leaves an absent label empty so the shape is derived from the
// participant count instead.
func parseShape(label string) classify.Shape {
	if label == "" {
		return ""
	}
	return classify.ParseShape(label)
}

// iconCount reads the number rendered next to a rating icon.
func iconCount(icon *goquery.Selection) (int64, bool) {
	n, err := strconv.ParseInt(text(icon.Parent()), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
