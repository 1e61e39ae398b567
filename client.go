package opensearch

import (
	"context"
	"log/slog"
	"net/http"
)

// Client is the entry point to the API. All generated-style methods on
// Client and its namespaced sub-clients funnel through one
// bind/serialize/dispatch routine; a Client is safe for concurrent use
// because every call builds its own request envelope.
type Client struct {
	transport  Transport
	serializer Serializer
	logger     *slog.Logger

	// Namespaced API groups.
	Indices *IndicesClient
	Cluster *ClusterClient
	SQL     *SQLClient
}

// Option configures a Client beyond its Config.
type Option func(*Client)

// WithTransport replaces the transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithSerializer replaces the body serializer.
func WithSerializer(s Serializer) Option {
	return func(c *Client) {
		c.serializer = s
	}
}

// WithLogger sets the logger used for deprecation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient builds a Client from cfg. The config is validated up front;
// a client is never constructed around a half-usable transport.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	c := &Client{
		transport:  cfg.Transport,
		serializer: cfg.Serializer,
		logger:     cfg.Logger,
	}
	if c.transport == nil {
		t, err := newHTTPTransport(cfg)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}
	if c.serializer == nil {
		c.serializer = JSONSerializer{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Indices = &IndicesClient{c: c}
	c.Cluster = &ClusterClient{c: c}
	c.SQL = &SQLClient{c: c}
	return c, nil
}

// do is the single dispatch routine behind every API method: bind the
// arguments, encode the body, hand one envelope to the transport, and
// return its result untouched. Binding and encoding never block; the
// transport call is the only point that waits.
func (c *Client) do(ctx context.Context, op *Operation, args Arguments, header http.Header, body any) (*Response, error) {
	bound, err := c.bind(ctx, op, args, header)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		if op.Bulk {
			payload, err = encodeBulkBody(c.serializer, body)
		} else {
			payload, err = encodeBody(c.serializer, body)
		}
		if err != nil {
			return nil, err
		}
	}

	req := &Request{
		Method: op.Method,
		Path:   bound.path,
		Params: bound.params,
		Header: bound.header,
		Body:   payload,
	}
	if len(payload) > 0 && req.Header.Get("Content-Type") == "" {
		if op.Bulk {
			req.Header.Set("Content-Type", "application/x-ndjson")
		} else {
			req.Header.Set("Content-Type", "application/json")
		}
	}

	return c.transport.Perform(ctx, req)
}
