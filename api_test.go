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

func TestAPI_url_shapes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		call       func(ctx context.Context, c *opensearch.Client) error
		wantMethod string
		wantPath   string
	}{
		"info": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Info(ctx, opensearch.InfoRequest{})
				return err
			},
			wantMethod: http.MethodGet, wantPath: "/",
		},
		"ping": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Ping(ctx, opensearch.PingRequest{})
				return err
			},
			wantMethod: http.MethodHead, wantPath: "/",
		},
		"create": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Create(ctx, opensearch.CreateRequest{Index: "i", ID: "7", Body: map[string]any{}})
				return err
			},
			wantMethod: http.MethodPut, wantPath: "/i/_create/7",
		},
		"get": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Get(ctx, opensearch.GetRequest{Index: "i", ID: "42"})
				return err
			},
			wantMethod: http.MethodGet, wantPath: "/i/_doc/42",
		},
		"exists": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Exists(ctx, opensearch.ExistsRequest{Index: "i", ID: "42"})
				return err
			},
			wantMethod: http.MethodHead, wantPath: "/i/_doc/42",
		},
		"delete": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Delete(ctx, opensearch.DeleteRequest{Index: "i", ID: "42"})
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "/i/_doc/42",
		},
		"update": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Update(ctx, opensearch.UpdateRequest{Index: "i", ID: "42", Body: map[string]any{"doc": map[string]any{}}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/i/_update/42",
		},
		"search with index": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Search(ctx, opensearch.SearchRequest{Index: []string{"logs", "metrics"}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/logs,metrics/_search",
		},
		"search without index": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Search(ctx, opensearch.SearchRequest{})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/_search",
		},
		"count": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Count(ctx, opensearch.CountRequest{Index: []string{"logs"}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/logs/_count",
		},
		"msearch": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Msearch(ctx, opensearch.MsearchRequest{Body: []any{
					map[string]any{},
					map[string]any{"query": map[string]any{"match_all": map[string]any{}}},
				}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/_msearch",
		},
		"scroll": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.Scroll(ctx, opensearch.ScrollRequest{Body: map[string]any{"scroll_id": "abc"}})
				return err
			},
			wantMethod: http.MethodPost, wantPath: "/_search/scroll",
		},
		"clear scroll": {
			call: func(ctx context.Context, c *opensearch.Client) error {
				_, err := c.ClearScroll(ctx, opensearch.ClearScrollRequest{Body: map[string]any{"scroll_id": []string{"abc"}}})
				return err
			},
			wantMethod: http.MethodDelete, wantPath: "/_search/scroll",
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

func TestAPI_query_parameters_reach_the_wire(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr)

	_, err := c.Search(context.Background(), opensearch.SearchRequest{
		Index:   []string{"logs"},
		Query:   "level:error",
		Size:    opensearch.Int(25),
		Sort:    []string{"@timestamp:desc", "_id"},
		Scroll:  "2m",
		Explain: opensearch.Bool(true),
	})
	require.NoError(t, err)

	params := tr.LastCall(t).Params
	assert.Equal(t, "level:error", params.Get("q"))
	assert.Equal(t, "25", params.Get("size"))
	assert.Equal(t, "@timestamp:desc,_id", params.Get("sort"))
	assert.Equal(t, "2m", params.Get("scroll"))
	assert.Equal(t, "true", params.Get("explain"))
}

func TestAPI_scroll_id_param_is_deprecated(t *testing.T) {
	t.Parallel()

	rec := &warnRecorder{}
	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr, opensearch.WithLogger(slog.New(rec)))

	_, err := c.Scroll(context.Background(), opensearch.ScrollRequest{ScrollID: "abc"})
	require.NoError(t, err)

	require.Equal(t, 1, rec.count())
	assert.Equal(t, "deprecated parameter", rec.records[0].Message)
	assert.Equal(t, "abc", tr.LastCall(t).Params.Get("scroll_id"), "warning does not change the request")
}

func TestAPI_common_params(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr)

	req := opensearch.GetRequest{Index: "i", ID: "1"}
	req.ErrorTrace = opensearch.Bool(true)
	req.FilterPath = []string{"hits.total", "-_shards"}
	req.Human = opensearch.Bool(false)
	req.Header = http.Header{}
	req.Header.Set("X-Opaque-Id", "req-7")

	_, err := c.Get(context.Background(), req)
	require.NoError(t, err)

	call := tr.LastCall(t)
	assert.Equal(t, "true", call.Params.Get("error_trace"))
	assert.Equal(t, "hits.total,-_shards", call.Params.Get("filter_path"))
	assert.Equal(t, "false", call.Params.Get("human"), "explicit false survives")
	assert.NotContains(t, call.Params, "pretty", "unset common param stays absent")
	assert.Equal(t, "req-7", call.Header.Get("X-Opaque-Id"))
}
