package zomato

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Response is the decoded body of one API call, returned unmodified. Numbers
// are kept as json.Number so identifiers round-trip exactly.
type Response struct {
	endpoint   Endpoint
	url        string
	statusCode int
	raw        []byte
	value      any
}

func decodeResponse(endpoint Endpoint, requestURL string, status int, body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, StatusCode: status, Snippet: responseSnippet(body), Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Endpoint: endpoint, StatusCode: status, Snippet: responseSnippet(body), Err: errors.New("trailing data after JSON value")}
	}

	return &Response{
		endpoint:   endpoint,
		url:        requestURL,
		statusCode: status,
		raw:        body,
		value:      value,
	}, nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}

// Value is the generic decoded tree: map[string]any, []any, string,
// json.Number, bool or nil.
func (r *Response) Value() any { return r.value }

// Raw is the body exactly as received.
func (r *Response) Raw() json.RawMessage { return json.RawMessage(r.raw) }

// StatusCode is informational only; the client never acts on it.
func (r *Response) StatusCode() int { return r.statusCode }

// URL is the fully resolved request URL.
func (r *Response) URL() string { return r.url }

func (r *Response) Endpoint() Endpoint { return r.endpoint }

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.raw, v); err != nil {
		return fmt.Errorf("decode %s response: %w", r.endpoint, err)
	}
	return nil
}

// Map returns the top-level object, if the body is one.
func (r *Response) Map() (map[string]any, bool) {
	m, ok := r.value.(map[string]any)
	return m, ok
}

// Lookup walks the decoded tree. Path elements are object keys (string) or
// array indexes (int).
func (r *Response) Lookup(path ...any) (any, bool) {
	cur := r.value
	for _, p := range path {
		switch key := p.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			if cur, ok = m[key]; !ok {
				return nil, false
			}
		case int:
			s, ok := cur.([]any)
			if !ok || key < 0 || key >= len(s) {
				return nil, false
			}
			cur = s[key]
		default:
			return nil, false
		}
	}
	return cur, true
}

// RemoteError reports whether the body is the API's own error object. The
// client never calls this itself.
func (r *Response) RemoteError() (*RemoteError, bool) {
	m, ok := r.Map()
	if !ok {
		return nil, false
	}
	if _, ok := m["message"]; !ok {
		return nil, false
	}

	var rerr RemoteError
	if err := json.Unmarshal(r.raw, &rerr); err != nil {
		return nil, false
	}
	if rerr.Code == 0 {
		rerr.Code = r.statusCode
	}
	if rerr.Code < 400 && r.statusCode < 400 {
		return nil, false
	}
	return &rerr, true
}

// DecodeAs projects a response onto one of the typed result structs.
func DecodeAs[T any](r *Response) (T, error) {
	var out T
	if r == nil {
		return out, errors.New("zomato: nil response")
	}
	err := r.Decode(&out)
	return out, err
}
