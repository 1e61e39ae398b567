package opensearch

import (
	"context"
	"net/http"
)

// SQLClient groups the SQL plugin APIs.
type SQLClient struct {
	c *Client
}

// sqlParams are shared by most SQL plugin operations.
var sqlParams = []ParamSpec{
	{Name: "format", In: InQuery, Type: "string",
		Description: "A short version of the Accept header (for example 'json' or 'yaml')."},
	{Name: "sanitize", In: InQuery, Type: "boolean", Default: "true",
		Description: "Whether to escape special characters in the results."},
	{Name: "source", In: InQuery, Type: "string",
		Description: "The URL-encoded request definition, for clients that cannot send a body on non-POST requests."},
}

var opSQLQuery = register(&Operation{
	Name:        "sql.query",
	Method:      http.MethodPost,
	URL:         "/_plugins/_sql",
	Params:      sqlParams,
	Description: "Sends a SQL or PPL query to the SQL plugin.",
})

// SQLQueryRequest configures SQLClient.Query.
type SQLQueryRequest struct {
	Body any

	Format   string
	Sanitize *bool
	Source   string

	commonParams
}

func (req SQLQueryRequest) args() Arguments {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetBool("sanitize", req.Sanitize)
	args.SetString("source", req.Source)
	req.apply(args)
	return args
}

// Query sends a SQL or PPL query to the SQL plugin.
func (sc *SQLClient) Query(ctx context.Context, req SQLQueryRequest) (*Response, error) {
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return sc.c.do(ctx, opSQLQuery, req.args(), req.Header, req.Body)
}

var opSQLExplain = register(&Operation{
	Name:        "sql.explain",
	Method:      http.MethodPost,
	URL:         "/_plugins/_sql/_explain",
	Params:      sqlParams,
	Description: "Shows how a query is executed against the cluster.",
})

// SQLExplainRequest configures SQLClient.Explain.
type SQLExplainRequest struct {
	Body any

	Format   string
	Sanitize *bool
	Source   string

	commonParams
}

// Explain shows how a query would be executed against the cluster.
func (sc *SQLClient) Explain(ctx context.Context, req SQLExplainRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetBool("sanitize", req.Sanitize)
	args.SetString("source", req.Source)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return sc.c.do(ctx, opSQLExplain, args, req.Header, req.Body)
}

var opSQLClose = register(&Operation{
	Name:        "sql.close",
	Method:      http.MethodPost,
	URL:         "/_plugins/_sql/close",
	Params:      sqlParams,
	Description: "Clears the cursor context of a paginated query.",
})

// SQLCloseRequest configures SQLClient.Close. Body carries the cursor.
type SQLCloseRequest struct {
	Body any

	Format   string
	Sanitize *bool
	Source   string

	commonParams
}

// Close clears the cursor context of a paginated query.
func (sc *SQLClient) Close(ctx context.Context, req SQLCloseRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetBool("sanitize", req.Sanitize)
	args.SetString("source", req.Source)
	req.apply(args)
	return sc.c.do(ctx, opSQLClose, args, req.Header, req.Body)
}

var opSQLGetStats = register(&Operation{
	Name:        "sql.get_stats",
	Method:      http.MethodGet,
	URL:         "/_plugins/_sql/stats",
	Params:      sqlParams,
	Stability:   StabilityExperimental,
	Description: "Collects metrics for the SQL plugin within the interval.",
})

// SQLGetStatsRequest configures SQLClient.GetStats.
type SQLGetStatsRequest struct {
	Format   string
	Sanitize *bool
	Source   string

	commonParams
}

// GetStats collects metrics for the SQL plugin.
func (sc *SQLClient) GetStats(ctx context.Context, req SQLGetStatsRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetBool("sanitize", req.Sanitize)
	args.SetString("source", req.Source)
	req.apply(args)
	return sc.c.do(ctx, opSQLGetStats, args, req.Header, nil)
}

var opSQLPostStats = register(&Operation{
	Name:        "sql.post_stats",
	Method:      http.MethodPost,
	URL:         "/_plugins/_sql/stats",
	Params:      sqlParams,
	Stability:   StabilityExperimental,
	Description: "Collects metrics for the SQL plugin filtered by the request body.",
})

// SQLPostStatsRequest configures SQLClient.PostStats.
type SQLPostStatsRequest struct {
	Body any

	Format   string
	Sanitize *bool
	Source   string

	commonParams
}

// PostStats collects metrics for the SQL plugin filtered by the body.
func (sc *SQLClient) PostStats(ctx context.Context, req SQLPostStatsRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetBool("sanitize", req.Sanitize)
	args.SetString("source", req.Source)
	req.apply(args)
	return sc.c.do(ctx, opSQLPostStats, args, req.Header, req.Body)
}

var opSQLSettings = register(&Operation{
	Name:   "sql.settings",
	Method: http.MethodPut,
	URL:    "/_plugins/_query/settings",
	Params: []ParamSpec{
		{Name: "format", In: InQuery, Type: "string"},
		{Name: "source", In: InQuery, Type: "string"},
	},
	Description: "Adds SQL settings to the standard cluster settings.",
})

// SQLSettingsRequest configures SQLClient.Settings.
type SQLSettingsRequest struct {
	Body any

	Format string
	Source string

	commonParams
}

// Settings adds SQL settings to the standard cluster settings.
func (sc *SQLClient) Settings(ctx context.Context, req SQLSettingsRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("format", req.Format)
	args.SetString("source", req.Source)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return sc.c.do(ctx, opSQLSettings, args, req.Header, req.Body)
}
