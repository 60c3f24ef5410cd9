package transport

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/PuerkitoBio/goquery"

	"github.com/agentstation/lnmap/pkg/errors"
)

// GetJSON performs a GET request and decodes the JSON body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	body, err := c.Get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	return DecodeJSON(c.source, body, target)
}

// GetDocument performs a GET request and parses the body as an HTML document.
func (c *Client) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.Get(ctx, url, "text/html")
	if err != nil {
		return nil, err
	}
	return DecodeHTML(c.source, body)
}

// DecodeJSON decodes a JSON payload, wrapping failures as a ParseError.
func DecodeJSON(source string, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewParseError("json", source, "failed to decode response", err)
	}
	return nil
}

// DecodeHTML parses an HTML payload, wrapping failures as a ParseError.
func DecodeHTML(source string, body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewParseError("html", source, "failed to parse document", err)
	}
	return doc, nil
}
