package zomato

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhishtagatya/zomathon/pkg/httpclient"
)

// BaseURL is the Zomato API v2.1 root.
const BaseURL = "https://developers.zomato.com/api/v2.1/"

// Header names and default values sent when no custom headers are given.
const (
	HeaderUserAgent   = "User-agent"
	HeaderContentType = "Content-type"
	HeaderAPIKey      = "X-Zomato-API-Key"

	DefaultUserAgent   = "curl/7.43.0"
	DefaultContentType = "application/json"
)

// Client performs requests against the Zomato API. It is immutable after New
// and safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	headers map[string]string
	debug   bool
	http    httpclient.Client
	log     Logger
	metrics *Metrics
}

// Option configures a Client.
type Option func(*options)

type options struct {
	headers    map[string]string
	debug      bool
	baseURL    string
	httpClient httpclient.Client
	timeout    time.Duration
	log        Logger
	metrics    *Metrics
}

// WithHeaders replaces the default headers wholesale. The map is copied and
// sent verbatim with every request; it is not merged with the defaults.
func WithHeaders(h map[string]string) Option {
	return func(o *options) { o.headers = copyHeaders(h) }
}

// WithDebug logs the resolved request URL of every call.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithBaseURL points the client at another root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient injects the transport.
func WithHTTPClient(c httpclient.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the transport timeout of the default resty client. It has
// no effect together with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets where debug output goes.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records per-endpoint request metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a client for the given API key. No network I/O happens here; an
// invalid key only shows up as an error payload on the first call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	headers := o.headers
	if headers == nil {
		headers = DefaultHeaders(apiKey)
	}

	baseURL := strings.TrimSpace(o.baseURL)
	if baseURL == "" {
		baseURL = BaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	hc := o.httpClient
	if hc == nil {
		hc = httpclient.NewRestyClient(o.timeout)
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		headers: headers,
		debug:   o.debug,
		http:    hc,
		log:     ensureLogger(o.log, o.debug),
		metrics: o.metrics,
	}, nil
}

// DefaultHeaders returns the headers used when none are supplied.
func DefaultHeaders(apiKey string) map[string]string {
	return map[string]string{
		HeaderUserAgent:   DefaultUserAgent,
		HeaderContentType: DefaultContentType,
		HeaderAPIKey:      apiKey,
	}
}

func copyHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// APIKey returns the key the client was built with.
func (c *Client) APIKey() string { return c.apiKey }

// BaseURL returns the root every endpoint path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Debug reports whether request URLs are logged.
func (c *Client) Debug() bool { return c.debug }

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string { return copyHeaders(c.headers) }

// Get is the shared request path behind every endpoint method. It normalizes
// params, issues the GET and decodes the body. The HTTP status is not
// interpreted.
func (c *Client) Get(ctx context.Context, endpoint Endpoint, params Params) (*Response, error) {
	query, err := params.Values()
	if err != nil {
		return nil, err
	}

	target := c.baseURL + string(endpoint)
	start := time.Now()
	resp, err := c.http.Get(ctx, target, query, c.headers)
	if err != nil {
		c.metrics.observe(endpoint, "error", time.Since(start))
		return nil, fmt.Errorf("zomato %s request: %w", endpoint, err)
	}
	c.metrics.observe(endpoint, strconv.Itoa(resp.StatusCode()), time.Since(start))

	requestURL := resp.RequestURL()
	if c.debug {
		c.log.InfoObj("zomato request", "url", requestURL)
	}

	return decodeResponse(endpoint, requestURL, resp.StatusCode(), resp.Body())
}
