package opensearch

import (
	"context"
	"net/http"
)

var opCreatePIT = register(&Operation{
	Name:   "create_pit",
	Method: http.MethodPost,
	URL:    "/{index}/_search/point_in_time",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list", Required: true,
			Description: "Comma-separated list of indices to open the point in time against."},
		{Name: "allow_partial_pit_creation", In: InQuery, Type: "boolean",
			Description: "Whether to create the point in time with partial failures."},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "keep_alive", In: InQuery, Type: "time", Required: true,
			Description: "How long to keep the point in time alive."},
		{Name: "preference", In: InQuery, Type: "string", Default: "random"},
		{Name: "routing", In: InQuery, Type: "list"},
	},
	Description: "Creates a point in time against one or more indices.",
})

// CreatePITRequest configures CreatePIT.
type CreatePITRequest struct {
	Index []string

	AllowPartialPITCreation *bool
	ExpandWildcards         string
	KeepAlive               string
	Preference              string
	Routing                 []string

	commonParams
}

// CreatePIT creates a point in time that preserves the current index
// state for later searches.
func (c *Client) CreatePIT(ctx context.Context, req CreatePITRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_partial_pit_creation", req.AllowPartialPITCreation)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetString("keep_alive", req.KeepAlive)
	args.SetString("preference", req.Preference)
	args.SetList("routing", req.Routing)
	req.apply(args)
	return c.do(ctx, opCreatePIT, args, req.Header, nil)
}

var opDeletePIT = register(&Operation{
	Name:        "delete_pit",
	Method:      http.MethodDelete,
	URL:         "/_search/point_in_time",
	Description: "Deletes one or more points in time listed in the request body.",
})

// DeletePITRequest configures DeletePIT. Body names the PIT IDs to
// delete, e.g. map[string]any{"pit_id": []string{...}}.
type DeletePITRequest struct {
	Body any

	commonParams
}

// DeletePIT deletes the points in time named in the request body.
func (c *Client) DeletePIT(ctx context.Context, req DeletePITRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opDeletePIT, args, req.Header, req.Body)
}

var opDeleteAllPITs = register(&Operation{
	Name:        "delete_all_pits",
	Method:      http.MethodDelete,
	URL:         "/_search/point_in_time/_all",
	Description: "Deletes all points in time.",
})

// DeleteAllPITsRequest configures DeleteAllPITs.
type DeleteAllPITsRequest struct {
	commonParams
}

// DeleteAllPITs deletes every point in time on the cluster.
func (c *Client) DeleteAllPITs(ctx context.Context, req DeleteAllPITsRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	return c.do(ctx, opDeleteAllPITs, args, req.Header, nil)
}

var opGetAllPITs = register(&Operation{
	Name:        "get_all_pits",
	Method:      http.MethodGet,
	URL:         "/_search/point_in_time/_all",
	Description: "Lists all active points in time.",
})

// GetAllPITsRequest configures GetAllPITs.
type GetAllPITsRequest struct {
	commonParams
}

// GetAllPITs lists every active point in time on the cluster.
func (c *Client) GetAllPITs(ctx context.Context, req GetAllPITsRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	return c.do(ctx, opGetAllPITs, args, req.Header, nil)
}
