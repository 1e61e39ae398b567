package opensearch

import (
	"context"
	"net/http"
)

// Test-only exports for internal functions.
var (
	EncodeBody     = encodeBody
	EncodeBulkBody = encodeBulkBody
	ResolvePath    = resolvePath
)

// Bind runs the parameter binder and returns its outputs for inspection.
func (c *Client) Bind(ctx context.Context, op *Operation, args Arguments, header http.Header) (string, map[string][]string, http.Header, error) {
	bound, err := c.bind(ctx, op, args, header)
	if err != nil {
		return "", nil, nil, err
	}
	return bound.path, bound.params, bound.header, nil
}

// Do exposes the dispatch routine for descriptor-level tests.
func (c *Client) Do(ctx context.Context, op *Operation, args Arguments, header http.Header, body any) (*Response, error) {
	return c.do(ctx, op, args, header, body)
}

// Register adds a descriptor to the catalog for tests that need a shape
// the real surface does not expose.
func Register(op *Operation) *Operation { return register(op) }
