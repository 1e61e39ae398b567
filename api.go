package opensearch

import (
	"context"
	"net/http"
)

// commonParams are accepted by every API method. Pointer fields
// distinguish explicit false/zero from absent; absent values are omitted
// from the request entirely.
type commonParams struct {
	ErrorTrace *bool
	FilterPath []string
	Human      *bool
	Pretty     *bool

	// Header entries are copied verbatim onto the request.
	Header http.Header
}

func (p commonParams) apply(args Arguments) {
	args.SetBool("error_trace", p.ErrorTrace)
	args.SetList("filter_path", p.FilterPath)
	args.SetBool("human", p.Human)
	args.SetBool("pretty", p.Pretty)
}

var opInfo = register(&Operation{
	Name:        "info",
	Method:      http.MethodGet,
	URL:         "/",
	Description: "Returns basic information about the cluster.",
})

// InfoRequest configures Info.
type InfoRequest struct {
	commonParams
}

// Info returns basic information about the cluster.
func (c *Client) Info(ctx context.Context, req InfoRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	return c.do(ctx, opInfo, args, req.Header, nil)
}

var opPing = register(&Operation{
	Name:        "ping",
	Method:      http.MethodHead,
	URL:         "/",
	Description: "Returns whether the cluster is up.",
})

// PingRequest configures Ping.
type PingRequest struct {
	commonParams
}

// Ping returns whether the cluster is up.
func (c *Client) Ping(ctx context.Context, req PingRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	return c.do(ctx, opPing, args, req.Header, nil)
}

var opIndex = register(&Operation{
	Name:   "index",
	Method: http.MethodPut,
	URL:    "/{index}/_doc/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true,
			Description: "Name of the target index."},
		{Name: "id", In: InPath, Type: "string", Required: true,
			Description: "Unique identifier for the document."},
		{Name: "if_primary_term", In: InQuery, Type: "integer",
			Description: "Only perform the operation if the document has this primary term."},
		{Name: "if_seq_no", In: InQuery, Type: "integer",
			Description: "Only perform the operation if the document has this sequence number."},
		{Name: "op_type", In: InQuery, Type: "enum", Values: []string{"index", "create"},
			Description: "Set to 'create' to only index the document if it does not already exist."},
		{Name: "pipeline", In: InQuery, Type: "string",
			Description: "ID of the pipeline to use to preprocess incoming documents."},
		{Name: "refresh", In: InQuery, Type: "enum", Values: []string{"true", "false", "wait_for"}, Default: "false",
			Description: "If 'true', refresh the affected shards to make this operation visible to search."},
		{Name: "require_alias", In: InQuery, Type: "boolean", Default: "false",
			Description: "If 'true', the destination must be an index alias."},
		{Name: "routing", In: InQuery, Type: "string",
			Description: "Custom value used to route operations to a specific shard."},
		{Name: "timeout", In: InQuery, Type: "time", Default: "1m",
			Description: "Period the operation waits for shard activity."},
		{Name: "version", In: InQuery, Type: "integer",
			Description: "Explicit version number for concurrency control."},
		{Name: "version_type", In: InQuery, Type: "enum", Values: []string{"internal", "external", "external_gte"},
			Description: "Specific version type."},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1",
			Description: "Number of shard copies that must be active before proceeding."},
	},
	Description: "Creates or updates a document in an index.",
})

// IndexRequest configures Index.
type IndexRequest struct {
	Index string
	ID    string
	Body  any

	IfPrimaryTerm       *int
	IfSeqNo             *int
	OpType              string
	Pipeline            string
	Refresh             string
	RequireAlias        *bool
	Routing             string
	Timeout             string
	Version             *int
	VersionType         string
	WaitForActiveShards string

	commonParams
}

// Index creates or updates a document in an index.
func (c *Client) Index(ctx context.Context, req IndexRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetInt("if_primary_term", req.IfPrimaryTerm)
	args.SetInt("if_seq_no", req.IfSeqNo)
	args.SetString("op_type", req.OpType)
	args.SetString("pipeline", req.Pipeline)
	args.SetString("refresh", req.Refresh)
	args.SetBool("require_alias", req.RequireAlias)
	args.SetString("routing", req.Routing)
	args.SetString("timeout", req.Timeout)
	args.SetInt("version", req.Version)
	args.SetString("version_type", req.VersionType)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opIndex, args, req.Header, req.Body)
}

var opCreate = register(&Operation{
	Name:   "create",
	Method: http.MethodPut,
	URL:    "/{index}/_create/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true},
		{Name: "id", In: InPath, Type: "string", Required: true},
		{Name: "pipeline", In: InQuery, Type: "string"},
		{Name: "refresh", In: InQuery, Type: "enum", Values: []string{"true", "false", "wait_for"}, Default: "false"},
		{Name: "routing", In: InQuery, Type: "string"},
		{Name: "timeout", In: InQuery, Type: "time", Default: "1m"},
		{Name: "version", In: InQuery, Type: "integer"},
		{Name: "version_type", In: InQuery, Type: "enum", Values: []string{"internal", "external", "external_gte"}},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1"},
	},
	Description: "Creates a new document; fails if a document with the same ID already exists.",
})

// CreateRequest configures Create.
type CreateRequest struct {
	Index string
	ID    string
	Body  any

	Pipeline            string
	Refresh             string
	Routing             string
	Timeout             string
	Version             *int
	VersionType         string
	WaitForActiveShards string

	commonParams
}

// Create indexes a new document, failing if the ID already exists.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetString("pipeline", req.Pipeline)
	args.SetString("refresh", req.Refresh)
	args.SetString("routing", req.Routing)
	args.SetString("timeout", req.Timeout)
	args.SetInt("version", req.Version)
	args.SetString("version_type", req.VersionType)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opCreate, args, req.Header, req.Body)
}

var opGet = register(&Operation{
	Name:   "get",
	Method: http.MethodGet,
	URL:    "/{index}/_doc/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true},
		{Name: "id", In: InPath, Type: "string", Required: true},
		{Name: "preference", In: InQuery, Type: "string",
			Description: "Node or shard the operation should be performed on."},
		{Name: "realtime", In: InQuery, Type: "boolean", Default: "true",
			Description: "If 'true', the request is real-time as opposed to near-real-time."},
		{Name: "refresh", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "routing", In: InQuery, Type: "string"},
		{Name: "stored_fields", In: InQuery, Type: "list"},
		{Name: "_source", In: InQuery, Type: "list",
			Description: "'true' or 'false' to return the _source field, or a list of fields to return."},
		{Name: "_source_excludes", In: InQuery, Type: "list"},
		{Name: "_source_includes", In: InQuery, Type: "list"},
		{Name: "version", In: InQuery, Type: "integer"},
		{Name: "version_type", In: InQuery, Type: "enum", Values: []string{"internal", "external", "external_gte"}},
	},
	Description: "Returns a document by ID.",
})

// GetRequest configures Get.
type GetRequest struct {
	Index string
	ID    string

	Preference     string
	Realtime       *bool
	Refresh        *bool
	Routing        string
	StoredFields   []string
	Source         []string
	SourceExcludes []string
	SourceIncludes []string
	Version        *int
	VersionType    string

	commonParams
}

func (req GetRequest) args() Arguments {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetString("preference", req.Preference)
	args.SetBool("realtime", req.Realtime)
	args.SetBool("refresh", req.Refresh)
	args.SetString("routing", req.Routing)
	args.SetList("stored_fields", req.StoredFields)
	args.SetList("_source", req.Source)
	args.SetList("_source_excludes", req.SourceExcludes)
	args.SetList("_source_includes", req.SourceIncludes)
	args.SetInt("version", req.Version)
	args.SetString("version_type", req.VersionType)
	req.apply(args)
	return args
}

// Get returns a document by ID.
func (c *Client) Get(ctx context.Context, req GetRequest) (*Response, error) {
	return c.do(ctx, opGet, req.args(), req.Header, nil)
}

var opExists = register(&Operation{
	Name:   "exists",
	Method: http.MethodHead,
	URL:    "/{index}/_doc/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true},
		{Name: "id", In: InPath, Type: "string", Required: true},
		{Name: "preference", In: InQuery, Type: "string"},
		{Name: "realtime", In: InQuery, Type: "boolean", Default: "true"},
		{Name: "refresh", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "routing", In: InQuery, Type: "string"},
	},
	Description: "Returns whether a document exists.",
})

// ExistsRequest configures Exists.
type ExistsRequest struct {
	Index string
	ID    string

	Preference string
	Realtime   *bool
	Refresh    *bool
	Routing    string

	commonParams
}

// Exists returns whether a document exists.
func (c *Client) Exists(ctx context.Context, req ExistsRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetString("preference", req.Preference)
	args.SetBool("realtime", req.Realtime)
	args.SetBool("refresh", req.Refresh)
	args.SetString("routing", req.Routing)
	req.apply(args)
	return c.do(ctx, opExists, args, req.Header, nil)
}

var opDelete = register(&Operation{
	Name:   "delete",
	Method: http.MethodDelete,
	URL:    "/{index}/_doc/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true},
		{Name: "id", In: InPath, Type: "string", Required: true},
		{Name: "if_primary_term", In: InQuery, Type: "integer"},
		{Name: "if_seq_no", In: InQuery, Type: "integer"},
		{Name: "refresh", In: InQuery, Type: "enum", Values: []string{"true", "false", "wait_for"}, Default: "false"},
		{Name: "routing", In: InQuery, Type: "string"},
		{Name: "timeout", In: InQuery, Type: "time", Default: "1m"},
		{Name: "version", In: InQuery, Type: "integer"},
		{Name: "version_type", In: InQuery, Type: "enum", Values: []string{"internal", "external", "external_gte"}},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1"},
	},
	Description: "Removes a document from an index.",
})

// DeleteRequest configures Delete.
type DeleteRequest struct {
	Index string
	ID    string

	IfPrimaryTerm       *int
	IfSeqNo             *int
	Refresh             string
	Routing             string
	Timeout             string
	Version             *int
	VersionType         string
	WaitForActiveShards string

	commonParams
}

// Delete removes a document from an index.
func (c *Client) Delete(ctx context.Context, req DeleteRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetInt("if_primary_term", req.IfPrimaryTerm)
	args.SetInt("if_seq_no", req.IfSeqNo)
	args.SetString("refresh", req.Refresh)
	args.SetString("routing", req.Routing)
	args.SetString("timeout", req.Timeout)
	args.SetInt("version", req.Version)
	args.SetString("version_type", req.VersionType)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	return c.do(ctx, opDelete, args, req.Header, nil)
}

var opUpdate = register(&Operation{
	Name:   "update",
	Method: http.MethodPost,
	URL:    "/{index}/_update/{id}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true},
		{Name: "id", In: InPath, Type: "string", Required: true},
		{Name: "if_primary_term", In: InQuery, Type: "integer"},
		{Name: "if_seq_no", In: InQuery, Type: "integer"},
		{Name: "lang", In: InQuery, Type: "string", Default: "painless",
			Description: "Script language of the update script."},
		{Name: "refresh", In: InQuery, Type: "enum", Values: []string{"true", "false", "wait_for"}, Default: "false"},
		{Name: "require_alias", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "retry_on_conflict", In: InQuery, Type: "integer", Default: "0",
			Description: "How many times the operation should be retried on version conflicts."},
		{Name: "routing", In: InQuery, Type: "string"},
		{Name: "timeout", In: InQuery, Type: "time", Default: "1m"},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1"},
	},
	Description: "Updates a document with a script or partial document.",
})

// UpdateRequest configures Update.
type UpdateRequest struct {
	Index string
	ID    string
	Body  any

	IfPrimaryTerm       *int
	IfSeqNo             *int
	Lang                string
	Refresh             string
	RequireAlias        *bool
	RetryOnConflict     *int
	Routing             string
	Timeout             string
	WaitForActiveShards string

	commonParams
}

// Update applies a script or partial document to an existing document.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("id", req.ID)
	args.SetInt("if_primary_term", req.IfPrimaryTerm)
	args.SetInt("if_seq_no", req.IfSeqNo)
	args.SetString("lang", req.Lang)
	args.SetString("refresh", req.Refresh)
	args.SetBool("require_alias", req.RequireAlias)
	args.SetInt("retry_on_conflict", req.RetryOnConflict)
	args.SetString("routing", req.Routing)
	args.SetString("timeout", req.Timeout)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opUpdate, args, req.Header, req.Body)
}

var opSearch = register(&Operation{
	Name:   "search",
	Method: http.MethodPost,
	URL:    "/{index}/_search",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list",
			Description: "Comma-separated list of indices to search; omit to search all."},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean"},
		{Name: "analyze_wildcard", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "analyzer", In: InQuery, Type: "string"},
		{Name: "batched_reduce_size", In: InQuery, Type: "integer", Default: "512"},
		{Name: "default_operator", In: InQuery, Type: "enum", Values: []string{"AND", "OR"}, Default: "OR"},
		{Name: "df", In: InQuery, Type: "string",
			Description: "Field to use as default where no field prefix is given in the query string."},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "explain", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "from", In: InQuery, Type: "integer", Default: "0",
			Description: "Starting document offset."},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "preference", In: InQuery, Type: "string"},
		{Name: "q", In: InQuery, Type: "string",
			Description: "Query in the Lucene query string syntax."},
		{Name: "request_cache", In: InQuery, Type: "boolean"},
		{Name: "rest_total_hits_as_int", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "routing", In: InQuery, Type: "list"},
		{Name: "scroll", In: InQuery, Type: "time",
			Description: "How long to retain the search context for scrolling."},
		{Name: "search_type", In: InQuery, Type: "enum", Values: []string{"query_then_fetch", "dfs_query_then_fetch"}},
		{Name: "seq_no_primary_term", In: InQuery, Type: "boolean"},
		{Name: "size", In: InQuery, Type: "integer", Default: "10"},
		{Name: "sort", In: InQuery, Type: "list"},
		{Name: "_source", In: InQuery, Type: "list"},
		{Name: "_source_excludes", In: InQuery, Type: "list"},
		{Name: "_source_includes", In: InQuery, Type: "list"},
		{Name: "stats", In: InQuery, Type: "list"},
		{Name: "timeout", In: InQuery, Type: "time"},
		{Name: "track_scores", In: InQuery, Type: "boolean"},
		{Name: "track_total_hits", In: InQuery, Type: "string"},
		{Name: "typed_keys", In: InQuery, Type: "boolean"},
		{Name: "version", In: InQuery, Type: "boolean"},
	},
	Description: "Returns results matching a query.",
})

// SearchRequest configures Search.
type SearchRequest struct {
	Index []string
	Body  any

	AllowNoIndices     *bool
	AnalyzeWildcard    *bool
	Analyzer           string
	BatchedReduceSize  *int
	DefaultOperator    string
	Df                 string
	ExpandWildcards    string
	Explain            *bool
	From               *int
	IgnoreUnavailable  *bool
	Preference         string
	Query              string
	RequestCache       *bool
	RestTotalHitsAsInt *bool
	Routing            []string
	Scroll             string
	SearchType         string
	SeqNoPrimaryTerm   *bool
	Size               *int
	Sort               []string
	Source             []string
	SourceExcludes     []string
	SourceIncludes     []string
	Stats              []string
	Timeout            string
	TrackScores        *bool
	TrackTotalHits     string
	TypedKeys          *bool
	Version            *bool

	commonParams
}

func (req SearchRequest) args() Arguments {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetBool("analyze_wildcard", req.AnalyzeWildcard)
	args.SetString("analyzer", req.Analyzer)
	args.SetInt("batched_reduce_size", req.BatchedReduceSize)
	args.SetString("default_operator", req.DefaultOperator)
	args.SetString("df", req.Df)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("explain", req.Explain)
	args.SetInt("from", req.From)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetString("preference", req.Preference)
	args.SetString("q", req.Query)
	args.SetBool("request_cache", req.RequestCache)
	args.SetBool("rest_total_hits_as_int", req.RestTotalHitsAsInt)
	args.SetList("routing", req.Routing)
	args.SetString("scroll", req.Scroll)
	args.SetString("search_type", req.SearchType)
	args.SetBool("seq_no_primary_term", req.SeqNoPrimaryTerm)
	args.SetInt("size", req.Size)
	args.SetList("sort", req.Sort)
	args.SetList("_source", req.Source)
	args.SetList("_source_excludes", req.SourceExcludes)
	args.SetList("_source_includes", req.SourceIncludes)
	args.SetList("stats", req.Stats)
	args.SetString("timeout", req.Timeout)
	args.SetBool("track_scores", req.TrackScores)
	args.SetString("track_total_hits", req.TrackTotalHits)
	args.SetBool("typed_keys", req.TypedKeys)
	args.SetBool("version", req.Version)
	req.apply(args)
	return args
}

// Search returns results matching a query.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*Response, error) {
	return c.do(ctx, opSearch, req.args(), req.Header, req.Body)
}

var opCount = register(&Operation{
	Name:   "count",
	Method: http.MethodPost,
	URL:    "/{index}/_count",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list"},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean"},
		{Name: "analyze_wildcard", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "analyzer", In: InQuery, Type: "string"},
		{Name: "default_operator", In: InQuery, Type: "enum", Values: []string{"AND", "OR"}, Default: "OR"},
		{Name: "df", In: InQuery, Type: "string"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "min_score", In: InQuery, Type: "integer",
			Description: "Only include documents with at least this _score."},
		{Name: "preference", In: InQuery, Type: "string"},
		{Name: "q", In: InQuery, Type: "string"},
		{Name: "routing", In: InQuery, Type: "list"},
		{Name: "terminate_after", In: InQuery, Type: "integer"},
	},
	Description: "Returns the number of documents matching a query.",
})

// CountRequest configures Count.
type CountRequest struct {
	Index []string
	Body  any

	AllowNoIndices    *bool
	AnalyzeWildcard   *bool
	Analyzer          string
	DefaultOperator   string
	Df                string
	ExpandWildcards   string
	IgnoreUnavailable *bool
	MinScore          *int
	Preference        string
	Query             string
	Routing           []string
	TerminateAfter    *int

	commonParams
}

// Count returns the number of documents matching a query.
func (c *Client) Count(ctx context.Context, req CountRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetBool("analyze_wildcard", req.AnalyzeWildcard)
	args.SetString("analyzer", req.Analyzer)
	args.SetString("default_operator", req.DefaultOperator)
	args.SetString("df", req.Df)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetInt("min_score", req.MinScore)
	args.SetString("preference", req.Preference)
	args.SetString("q", req.Query)
	args.SetList("routing", req.Routing)
	args.SetInt("terminate_after", req.TerminateAfter)
	req.apply(args)
	return c.do(ctx, opCount, args, req.Header, req.Body)
}

var opBulk = register(&Operation{
	Name:   "bulk",
	Method: http.MethodPost,
	URL:    "/{index}/_bulk",
	Bulk:   true,
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string",
			Description: "Default index for items that do not name one."},
		{Name: "pipeline", In: InQuery, Type: "string"},
		{Name: "refresh", In: InQuery, Type: "enum", Values: []string{"true", "false", "wait_for"}, Default: "false"},
		{Name: "require_alias", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "routing", In: InQuery, Type: "string"},
		{Name: "timeout", In: InQuery, Type: "time", Default: "1m"},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1"},
	},
	Description: "Performs multiple index, create, update, or delete operations in one call.",
})

// BulkRequest configures Bulk. Body is either an ordered []any of
// action-metadata / source pairs or an already-framed NDJSON stream.
type BulkRequest struct {
	Index string
	Body  any

	Pipeline            string
	Refresh             string
	RequireAlias        *bool
	Routing             string
	Timeout             string
	WaitForActiveShards string

	commonParams
}

// Bulk performs multiple document operations in one call.
func (c *Client) Bulk(ctx context.Context, req BulkRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("pipeline", req.Pipeline)
	args.SetString("refresh", req.Refresh)
	args.SetBool("require_alias", req.RequireAlias)
	args.SetString("routing", req.Routing)
	args.SetString("timeout", req.Timeout)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opBulk, args, req.Header, req.Body)
}

var opMsearch = register(&Operation{
	Name:   "msearch",
	Method: http.MethodPost,
	URL:    "/{index}/_msearch",
	Bulk:   true,
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list"},
		{Name: "ccs_minimize_roundtrips", In: InQuery, Type: "boolean", Default: "true"},
		{Name: "max_concurrent_searches", In: InQuery, Type: "integer"},
		{Name: "rest_total_hits_as_int", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "typed_keys", In: InQuery, Type: "boolean"},
	},
	Description: "Executes several searches in a single request.",
})

// MsearchRequest configures Msearch. Body follows the bulk framing rules:
// alternating header and search-body records.
type MsearchRequest struct {
	Index []string
	Body  any

	CcsMinimizeRoundtrips *bool
	MaxConcurrentSearches *int
	RestTotalHitsAsInt    *bool
	TypedKeys             *bool

	commonParams
}

// Msearch executes several searches in a single request.
func (c *Client) Msearch(ctx context.Context, req MsearchRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("ccs_minimize_roundtrips", req.CcsMinimizeRoundtrips)
	args.SetInt("max_concurrent_searches", req.MaxConcurrentSearches)
	args.SetBool("rest_total_hits_as_int", req.RestTotalHitsAsInt)
	args.SetBool("typed_keys", req.TypedKeys)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return c.do(ctx, opMsearch, args, req.Header, req.Body)
}

var opScroll = register(&Operation{
	Name:   "scroll",
	Method: http.MethodPost,
	URL:    "/_search/scroll",
	Params: []ParamSpec{
		{Name: "rest_total_hits_as_int", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "scroll", In: InQuery, Type: "time",
			Description: "How long to retain the search context."},
		{Name: "scroll_id", In: InQuery, Type: "string",
			Deprecated:  "Sending the scroll ID as a query parameter is deprecated; send it in the request body instead.",
			Description: "Scroll ID of the search context."},
	},
	Description: "Returns the next batch of results for a scrolling search.",
})

// ScrollRequest configures Scroll. Prefer sending the scroll ID in Body;
// the ScrollID parameter is deprecated.
type ScrollRequest struct {
	Body any

	RestTotalHitsAsInt *bool
	Scroll             string
	ScrollID           string

	commonParams
}

// Scroll returns the next batch of results for a scrolling search.
func (c *Client) Scroll(ctx context.Context, req ScrollRequest) (*Response, error) {
	args := Arguments{}
	args.SetBool("rest_total_hits_as_int", req.RestTotalHitsAsInt)
	args.SetString("scroll", req.Scroll)
	args.SetString("scroll_id", req.ScrollID)
	req.apply(args)
	return c.do(ctx, opScroll, args, req.Header, req.Body)
}

var opClearScroll = register(&Operation{
	Name:        "clear_scroll",
	Method:      http.MethodDelete,
	URL:         "/_search/scroll",
	Description: "Explicitly clears one or more scroll search contexts.",
})

// ClearScrollRequest configures ClearScroll. Body carries the scroll IDs.
type ClearScrollRequest struct {
	Body any

	commonParams
}

// ClearScroll explicitly clears scroll search contexts.
func (c *Client) ClearScroll(ctx context.Context, req ClearScrollRequest) (*Response, error) {
	args := Arguments{}
	req.apply(args)
	return c.do(ctx, opClearScroll, args, req.Header, req.Body)
}
