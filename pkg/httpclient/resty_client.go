package httpclient

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds one round trip when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// RestyClient is the resty-backed Client. It never retries and keeps no
// state between calls besides resty's connection pool.
type RestyClient struct {
	rc *resty.Client
}

// NewRestyClient returns a client with the given timeout; non-positive means DefaultTimeout.
func NewRestyClient(timeout time.Duration) *RestyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RestyClient{rc: resty.New().SetTimeout(timeout)}
}

// NewRestyClientFrom wraps a resty.Client the caller configured (proxy, TLS, transport).
func NewRestyClientFrom(rc *resty.Client) *RestyClient {
	if rc == nil {
		return NewRestyClient(0)
	}
	return &RestyClient{rc: rc}
}

// Get issues GET rawURL?query with headers set on the request.
func (c *RestyClient) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (Response, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetHeaders(headers).
		Get(rawURL)
	if err != nil {
		return nil, err
	}
	return restyResponse{resp: resp, requested: rawURL}, nil
}

type restyResponse struct {
	resp      *resty.Response
	requested string
}

func (r restyResponse) Body() []byte    { return r.resp.Body() }
func (r restyResponse) StatusCode() int { return r.resp.StatusCode() }

// RequestURL prefers the URL actually sent, query string included.
func (r restyResponse) RequestURL() string {
	if req := r.resp.Request; req != nil && req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.String()
	}
	return r.requested
}
