package zomato

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/abhishtagatya/zomathon/pkg/httpclient"
)

// fakeResponse lets us stub the httpclient.Client interface.
type fakeResponse struct {
	body       []byte
	statusCode int
	url        string
}

func (f fakeResponse) Body() []byte       { return f.body }
func (f fakeResponse) StatusCode() int    { return f.statusCode }
func (f fakeResponse) RequestURL() string { return f.url }

type recordedCall struct {
	url     string
	query   url.Values
	headers map[string]string
}

// recordingClient returns a canned body and remembers every call.
type recordingClient struct {
	mu     sync.Mutex
	calls  []recordedCall
	body   string
	status int
	err    error
}

func (r *recordingClient) Get(_ context.Context, u string, query url.Values, headers map[string]string) (httpclient.Response, error) {
	r.mu.Lock()
	r.calls = append(r.calls, recordedCall{url: u, query: query, headers: headers})
	r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = 200
	}
	body := r.body
	if body == "" {
		body = `{}`
	}
	resolved := u
	if len(query) > 0 {
		resolved += "?" + query.Encode()
	}
	return fakeResponse{body: []byte(body), statusCode: status, url: resolved}, nil
}

func (r *recordingClient) only(t *testing.T) recordedCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) != 1 {
		t.Fatalf("expected exactly 1 request, got %d", len(r.calls))
	}
	return r.calls[0]
}

func (r *recordingClient) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type logEntry struct {
	msg string
	key string
	obj interface{}
}

type recordingLogger struct {
	mu   sync.Mutex
	info []logEntry
}

func (l *recordingLogger) InfoObj(msg, key string, obj interface{}) {
	l.mu.Lock()
	l.info = append(l.info, logEntry{msg: msg, key: key, obj: obj})
	l.mu.Unlock()
}
func (l *recordingLogger) DebugObj(string, string, interface{}) {}
func (l *recordingLogger) WarnObj(string, string, interface{})  {}
func (l *recordingLogger) ErrorObj(string, string, interface{}) {}

var errTransport = errors.New("dial tcp: connection refused")

func newTestClient(t *testing.T, hc httpclient.Client, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(hc)}, opts...)
	c, err := New("abc123", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}
