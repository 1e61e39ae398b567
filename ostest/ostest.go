// Package ostest provides a recording Transport for client tests.
package ostest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"testing"

	opensearch "github.com/fidelity-contributions/opensearch-client-go"
)

// Call is one recorded request envelope.
type Call struct {
	Method string
	Path   string
	Params url.Values
	Header http.Header
	Body   []byte
}

// Transport records every request and replays canned responses. The zero
// value answers every call with 200 and an empty JSON object. Safe for
// concurrent use.
type Transport struct {
	mu    sync.Mutex
	calls []Call

	// Response is returned for every call unless Handler is set.
	Response *opensearch.Response

	// Err is returned for every call unless Handler is set.
	Err error

	// Handler, when set, computes the response per call.
	Handler func(req *opensearch.Request) (*opensearch.Response, error)
}

// Perform records req and replays the configured response.
func (t *Transport) Perform(_ context.Context, req *opensearch.Request) (*opensearch.Response, error) {
	t.mu.Lock()
	t.calls = append(t.calls, Call{
		Method: req.Method,
		Path:   req.Path,
		Params: req.Params,
		Header: req.Header,
		Body:   req.Body,
	})
	t.mu.Unlock()

	if t.Handler != nil {
		return t.Handler(req)
	}
	if t.Err != nil {
		return t.Response, t.Err
	}
	if t.Response != nil {
		return t.Response, nil
	}
	return &opensearch.Response{StatusCode: http.StatusOK, Body: []byte("{}")}, nil
}

// Calls returns a copy of every recorded call in order.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// LastCall returns the most recent call, failing the test if none were
// made.
func (t *Transport) LastCall(tb testing.TB) Call {
	tb.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.calls) == 0 {
		tb.Fatal("ostest: no calls recorded")
	}
	return t.calls[len(t.calls)-1]
}

// AssertCalled fails the test unless exactly one call was recorded with
// the given method and path.
func (t *Transport) AssertCalled(tb testing.TB, method, path string) Call {
	tb.Helper()
	calls := t.Calls()
	if len(calls) != 1 {
		tb.Fatalf("ostest: expected exactly one call, got %d", len(calls))
	}
	call := calls[0]
	if call.Method != method || call.Path != path {
		tb.Fatalf("ostest: expected %s %s, got %s %s", method, path, call.Method, call.Path)
	}
	return call
}

// NewClient builds a client wired to t, with deprecation warnings
// discarded unless the caller installs a logger.
func NewClient(tb testing.TB, t *Transport, opts ...opensearch.Option) *opensearch.Client {
	tb.Helper()
	opts = append([]opensearch.Option{
		opensearch.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	c, err := opensearch.NewClient(opensearch.Config{Transport: t}, opts...)
	if err != nil {
		tb.Fatalf("ostest: new client: %v", err)
	}
	return c
}
