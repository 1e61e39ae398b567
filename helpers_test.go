package opensearch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opensearch "github.com/fidelity-contributions/opensearch-client-go"
	"github.com/fidelity-contributions/opensearch-client-go/ostest"
)

// bulkOKHandler answers every bulk request with one successful item per
// submitted action.
func bulkOKHandler(req *opensearch.Request) (*opensearch.Response, error) {
	items := make([]map[string]map[string]any, 0)
	lines := bytes.Split(bytes.TrimSuffix(req.Body, []byte("\n")), []byte("\n"))
	for _, line := range lines {
		var meta map[string]json.RawMessage
		if err := json.Unmarshal(line, &meta); err != nil {
			return nil, err
		}
		for opType := range meta {
			switch opType {
			case "index", "create", "update", "delete":
				items = append(items, map[string]map[string]any{opType: {"status": 200}})
			}
		}
	}
	body, err := json.Marshal(map[string]any{"errors": false, "items": items})
	if err != nil {
		return nil, err
	}
	return &opensearch.Response{StatusCode: http.StatusOK, Body: body}, nil
}

func TestBulkIndex_all_documents_succeed(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{Handler: bulkOKHandler}
	c := ostest.NewClient(t, tr)

	var actions []opensearch.BulkAction
	for i := 0; i < 10; i++ {
		actions = append(actions, opensearch.BulkAction{
			ID:  fmt.Sprintf("%d", i),
			Doc: map[string]any{"answer": i},
		})
	}

	stats, err := opensearch.BulkIndex(context.Background(), c, actions, opensearch.BulkIndexerConfig{
		Index: "test-index",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Succeeded)
	assert.Zero(t, stats.Failed)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/test-index/_bulk", calls[0].Path)
}

func TestBulkIndex_chunking(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{Handler: bulkOKHandler}
	c := ostest.NewClient(t, tr)

	var actions []opensearch.BulkAction
	for i := 0; i < 5; i++ {
		actions = append(actions, opensearch.BulkAction{
			ID:  fmt.Sprintf("%d", i),
			Doc: map[string]any{"n": i},
		})
	}

	stats, err := opensearch.BulkIndex(context.Background(), c, actions, opensearch.BulkIndexerConfig{
		Index:     "i",
		ChunkSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Succeeded)
	assert.Len(t, tr.Calls(), 3, "5 actions at chunk size 2 make 3 requests")
}

func TestBulkIndex_actions_remain_unchanged(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{Handler: bulkOKHandler}
	c := ostest.NewClient(t, tr)

	actions := []opensearch.BulkAction{
		{ID: "1", Doc: map[string]any{"a": 1}},
		{OpType: "delete", ID: "2"},
	}
	want := []opensearch.BulkAction{
		{ID: "1", Doc: map[string]any{"a": 1}},
		{OpType: "delete", ID: "2"},
	}

	_, err := opensearch.BulkIndex(context.Background(), c, actions, opensearch.BulkIndexerConfig{Index: "i"})
	require.NoError(t, err)
	assert.Equal(t, want, actions)
}

func TestBulkIndex_mixed_op_types(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{Handler: bulkOKHandler}
	c := ostest.NewClient(t, tr)

	actions := []opensearch.BulkAction{
		{Index: "i", ID: "47", Doc: map[string]any{"f": "v"}},
		{OpType: "delete", Index: "i", ID: "45"},
		{OpType: "update", Index: "i", ID: "42", Doc: map[string]any{"doc": map[string]any{"answer": 42}}},
	}

	stats, err := opensearch.BulkIndex(context.Background(), c, actions, opensearch.BulkIndexerConfig{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Succeeded)

	lines := bytes.Split(bytes.TrimSuffix(tr.LastCall(t).Body, []byte("\n")), []byte("\n"))
	require.Len(t, lines, 5, "delete carries no source line")
	assert.JSONEq(t, `{"index":{"_index":"i","_id":"47"}}`, string(lines[0]))
	assert.JSONEq(t, `{"delete":{"_index":"i","_id":"45"}}`, string(lines[2]))
	assert.JSONEq(t, `{"update":{"_index":"i","_id":"42"}}`, string(lines[3]))
}

func TestBulkIndex_collects_item_errors(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{Handler: func(_ *opensearch.Request) (*opensearch.Response, error) {
		body := `{"errors":true,"items":[` +
			`{"index":{"status":201}},` +
			`{"index":{"status":400,"error":{"type":"mapper_parsing_exception"}}}` +
			`]}`
		return &opensearch.Response{StatusCode: http.StatusOK, Body: []byte(body)}, nil
	}}
	c := ostest.NewClient(t, tr)

	actions := []opensearch.BulkAction{
		{ID: "1", Doc: map[string]any{"a": 1}},
		{ID: "2", Doc: map[string]any{"a": "not-an-int"}},
	}

	stats, err := opensearch.BulkIndex(context.Background(), c, actions, opensearch.BulkIndexerConfig{Index: "i"})

	var berr *opensearch.BulkIndexError
	require.ErrorAs(t, err, &berr)
	require.Len(t, berr.Errors, 1)
	assert.Equal(t, 1, berr.Errors[0].Position)
	assert.Equal(t, http.StatusBadRequest, berr.Errors[0].Status)
	assert.Equal(t, 1, stats.Succeeded)
	assert.Equal(t, 1, stats.Failed)
}

func TestBulkIndex_transport_failure_aborts(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	tr := &ostest.Transport{Err: sentinel}
	c := ostest.NewClient(t, tr)

	_, err := opensearch.BulkIndex(context.Background(), c,
		[]opensearch.BulkAction{{ID: "1", Doc: map[string]any{}}},
		opensearch.BulkIndexerConfig{Index: "i"},
	)
	require.ErrorIs(t, err, sentinel)
}

func TestBulkIndex_missing_doc(t *testing.T) {
	t.Parallel()

	tr := &ostest.Transport{}
	c := ostest.NewClient(t, tr)

	_, err := opensearch.BulkIndex(context.Background(), c,
		[]opensearch.BulkAction{{ID: "1"}}, // index action without a document
		opensearch.BulkIndexerConfig{Index: "i"},
	)
	require.ErrorIs(t, err, opensearch.ErrMissingArgument)
	assert.Empty(t, tr.Calls())
}

func TestScan_pages_through_all_hits(t *testing.T) {
	t.Parallel()

	pages := []string{
		`{"_scroll_id":"s1","hits":{"hits":[{"n":1},{"n":2}]}}`,
		`{"_scroll_id":"s2","hits":{"hits":[{"n":3}]}}`,
		`{"_scroll_id":"s3","hits":{"hits":[]}}`,
	}

	var scrollCalls int
	tr := &ostest.Transport{}
	tr.Handler = func(req *opensearch.Request) (*opensearch.Response, error) {
		if req.Method == http.MethodDelete {
			return &opensearch.Response{StatusCode: http.StatusOK, Body: []byte("{}")}, nil
		}
		page := pages[scrollCalls]
		scrollCalls++
		return &opensearch.Response{StatusCode: http.StatusOK, Body: []byte(page)}, nil
	}
	c := ostest.NewClient(t, tr)

	var seen []int
	err := opensearch.Scan(context.Background(), c, opensearch.ScanConfig{Index: []string{"logs"}},
		func(hit json.RawMessage) error {
			var rec struct {
				N int `json:"n"`
			}
			if err := json.Unmarshal(hit, &rec); err != nil {
				return err
			}
			seen = append(seen, rec.N)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)

	calls := tr.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "/logs/_search", calls[0].Path)
	last := calls[len(calls)-1]
	assert.Equal(t, http.MethodDelete, last.Method, "scroll context is cleared at the end")
	assert.Equal(t, "/_search/scroll", last.Path)
}

func TestScan_callback_error_stops_iteration(t *testing.T) {
	t.Parallel()

	stop := errors.New("enough")
	tr := &ostest.Transport{Response: &opensearch.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"_scroll_id":"s1","hits":{"hits":[{"n":1},{"n":2}]}}`),
	}}
	c := ostest.NewClient(t, tr)

	var count int
	err := opensearch.Scan(context.Background(), c, opensearch.ScanConfig{},
		func(json.RawMessage) error {
			count++
			return stop
		})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}
