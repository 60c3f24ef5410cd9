package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agentstation/lnmap/pkg/errors"
)

// graphQLRequest is the body of a GraphQL POST.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the envelope of every GraphQL response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphQL posts query to endpoint and decodes the data member into target.
//
// An errors member in the response, or a missing data member, yields a
// *errors.GraphQLError. Servers that answer a rejected query with HTTP 400
// and an errors payload are treated the same way.
func (c *Client) GraphQL(ctx context.Context, endpoint, query string, vars map[string]any, target any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return errors.WrapParse("json", c.source, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WrapResource("create", "request", "POST "+endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	body, err := c.readBody(ctx, req, resp)
	if err != nil {
		if resp.StatusCode == http.StatusBadRequest {
			if gqlErr := parseGraphQLErrors(endpoint, body); gqlErr != nil {
				return gqlErr
			}
		}
		return err
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errors.NewParseError("json", c.source, "invalid GraphQL response", err)
	}
	if len(envelope.Errors) > 0 {
		return newGraphQLError(endpoint, envelope)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return &errors.GraphQLError{Endpoint: endpoint}
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return errors.NewParseError("json", c.source, "unexpected GraphQL data shape", err)
	}
	return nil
}

func parseGraphQLErrors(endpoint string, body []byte) error {
	var envelope graphQLResponse
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Errors) == 0 {
		return nil
	}
	return newGraphQLError(endpoint, envelope)
}

func newGraphQLError(endpoint string, envelope graphQLResponse) *errors.GraphQLError {
	messages := make([]string, 0, len(envelope.Errors))
	for _, e := range envelope.Errors {
		if m := strings.TrimSpace(e.Message); m != "" {
			messages = append(messages, m)
		}
	}
	return &errors.GraphQLError{Endpoint: endpoint, Messages: messages}
}
