package opensearch_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opensearch "github.com/fidelity-contributions/opensearch-client-go"
	"github.com/fidelity-contributions/opensearch-client-go/ostest"
)

func TestIndices_url_shapes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		call       func(ctx context.Context, c *opensearch.Client) error
		wantMethod string
		wantPath   string
	}{
		"create": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Create(ctx, opensearch.IndicesCreateRequest{Index: "logs"})
				return err
			},
			wantMethod: http.MethodPut, wantPath: "/logs",
		},
		"delete": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Delete(ctx, opensearch.IndicesDeleteRequest{Index: []string{"a", "b"}})
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "/a,b",
		},
		"exists": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Exists(ctx, opensearch.IndicesExistsRequest{Index: []string{"logs"}})
				return err
			},
			wantMethod: http.MethodHead, wantPath: "/logs",
		},
		"get": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Get(ctx, opensearch.IndicesGetRequest{Index: []string{"logs"}})
				return err
			},
			wantMethod: http.MethodGet, wantPath: "/logs",
		},
		"refresh all": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Refresh(ctx, opensearch.IndicesRefreshRequest{})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/_refresh",
		},
		"refresh one": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.Refresh(ctx, opensearch.IndicesRefreshRequest{Index: []string{"logs"}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/logs/_refresh",
		},
		"put mapping": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.PutMapping(ctx, opensearch.IndicesPutMappingRequest{
					Index: []string{"logs"},
					Body:  map[string]any{"properties": map[string]any{"a": map[string]any{"type": "integer"}}},
				})
				return err
			},
			wantMethod: http.MethodPut, wantPath: "/logs/_mapping",
		},
		"get mapping all": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Indices.GetMapping(ctx, opensearch.IndicesGetMappingRequest{})
				return err
			},
			wantMethod: http.MethodGet, wantPath: "/_mapping",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tr := &ostest.Transport{}
			c := ostest.NewClient(t, tr)

			require.NoError(t, tt.call(context.Background(), c))
			tr.AssertCalled(t, tt.wantMethod, tt.wantPath)
		})
	}
}

func TestIndices_put_mapping_requires_body(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr)

	_, err := c.Indices.PutMapping(context.Background(), opensearch.IndicesPutMappingRequest{Index: []string{"logs"}})
	require.ErrorIs(t, err, opensearch.ErrMissingArgument)
	assert.Empty(t, tr.Calls())
}

func TestIndices_master_timeout_is_deprecated(t *testing.T) {
	t.Parallel()

	rec := &warnRecorder{}
	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr, opensearch.WithLogger(slog.New(rec)))

	_, err := c.Indices.Create(context.Background(), opensearch.IndicesCreateRequest{
		Index:         "logs",
		MasterTimeout: "30s",
	})
	require.NoError(t, err)

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "deprecated parameter", rec.records[0].Message)
	assert.Equal(t, "30s", tr.LastCall(t).Params.Get("master_timeout"))
}

func TestIndices_cluster_manager_timeout_is_not_deprecated(t *testing.T) {
	t.Parallel()

	rec := &warnRecorder{}
	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr, opensearch.WithLogger(slog.New(rec)))

	_, err := c.Indices.Create(context.Background(), opensearch.IndicesCreateRequest{
		Index:                 "logs",
		ClusterManagerTimeout: "30s",
	})
	require.NoError(t, err)
	assert.Zero(t, rec.count())
}
