package oneml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func goqueryDoc(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
