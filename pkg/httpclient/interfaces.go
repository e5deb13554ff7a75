package httpclient

import (
	"context"
	"net/url"
)

// Response is what the API client needs back from a round trip.
type Response interface {
	Body() []byte
	StatusCode() int
	// RequestURL is the resolved URL, query string included.
	RequestURL() string
}

// Client abstracts the transport so tests and callers can swap it out.
type Client interface {
	Get(ctx context.Context, url string, query url.Values, headers map[string]string) (Response, error)
}
