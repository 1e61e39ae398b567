package opensearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

// Request is the envelope handed to a Transport: one fully bound call.
// It is constructed fresh per invocation and never reused.
type Request struct {
	Method string
	Path   string
	Params url.Values
	Header http.Header
	Body   []byte
}

// Response is the transport's result, returned to the caller untouched.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one HTTP exchange. Connection pooling, retries, node
// discovery, and authentication policy all live behind this interface;
// the client issues exactly one Perform per call and interprets nothing.
type Transport interface {
	Perform(ctx context.Context, req *Request) (*Response, error)
}

// httpTransport is the default Transport: a thin net/http wrapper against
// a single base URL, with an optional client-side throttle.
type httpTransport struct {
	base     *url.URL
	client   *http.Client
	limiter  *rate.Limiter
	username string
	password string
}

func newHTTPTransport(cfg Config) (*httpTransport, error) {
	base, err := url.Parse(cfg.Addresses[0])
	if err != nil {
		return nil, fmt.Errorf("parse address: %w", err)
	}
	t := &httpTransport{
		base:     base,
		client:   cfg.HTTPClient,
		username: cfg.Username,
		password: cfg.Password,
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	if cfg.Throttle > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(cfg.Throttle), burst)
	}
	return t, nil
}

// Perform sends req and reads the full response. Non-2xx statuses return
// both the response and a *TransportError so callers can inspect the body
// while still handling the failure with errors.As.
func (t *httpTransport) Perform(ctx context.Context, req *Request) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	// req.Path arrives escaped from the binder. Keep Path/RawPath in
	// sync so URL.String sends the escaping exactly once.
	u := *t.base
	rawPath := strings.TrimSuffix(u.EscapedPath(), "/") + req.Path
	unescaped, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, err
	}
	u.Path = unescaped
	u.RawPath = ""
	if unescaped != rawPath {
		u.RawPath = rawPath
	}
	u.RawQuery = req.Params.Encode()

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		httpReq.Header[k] = vs
	}
	if t.username != "" {
		httpReq.SetBasicAuth(t.username, t.password)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}
	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, &TransportError{Status: httpResp.StatusCode, Body: data}
	}
	return resp, nil
}
