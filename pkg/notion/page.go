package notion

import (
	"encoding/json"
	"fmt"
)

// Page is one row of a database.
type Page struct {
	Object     string     `json:"object"`
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
}

// Properties maps a property name to its decoded value.
type Properties map[string]Property

// UnmarshalJSON decodes every property through ParseProperty.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	props := make(Properties, len(raw))
	for name, value := range raw {
		props[name] = ParseProperty(value)
	}
	*p = props
	return nil
}

// Get returns the named property, or nil when the page does not have it.
func (p Properties) Get(name string) Property {
	return p[name]
}

// QueryResponse is the body of POST /databases/{id}/query.
type QueryResponse struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// queryEnvelope keeps Results as a pointer so a missing key is detectable.
type queryEnvelope struct {
	Object     string  `json:"object"`
	Results    *[]Page `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// DecodeQueryResponse parses a query body. A body without a results
// array is an error.
func DecodeQueryResponse(data []byte) (*QueryResponse, error) {
	var env queryEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	if env.Results == nil {
		return nil, fmt.Errorf("query response has no results array")
	}

	return &QueryResponse{
		Object:     env.Object,
		Results:    *env.Results,
		HasMore:    env.HasMore,
		NextCursor: env.NextCursor,
	}, nil
}

// ErrorResponse is the body Notion returns with a non-2xx status.
type ErrorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeErrorResponse returns nil when data is not a Notion error object.
func DecodeErrorResponse(data []byte) *ErrorResponse {
	var e ErrorResponse
	if err := json.Unmarshal(data, &e); err != nil || e.Object != "error" {
		return nil
	}
	return &e
}
