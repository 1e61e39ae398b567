package opensearch

import (
	"context"
	"net/http"
)

// IndicesClient groups the index management APIs.
type IndicesClient struct {
	c *Client
}

// masterTimeoutDeprecation is shared by every operation that still
// accepts the legacy parameter name.
const masterTimeoutDeprecation = "Deprecated in favor of 'cluster_manager_timeout'."

var opIndicesCreate = register(&Operation{
	Name:   "indices.create",
	Method: http.MethodPut,
	URL:    "/{index}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "string", Required: true,
			Description: "Name of the index to create."},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s",
			Description: "Period to wait for a connection to the cluster manager node."},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
		{Name: "timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "1"},
	},
	Description: "Creates an index with optional settings and mappings.",
})

// IndicesCreateRequest configures IndicesClient.Create.
type IndicesCreateRequest struct {
	Index string
	Body  any

	ClusterManagerTimeout string
	MasterTimeout         string
	Timeout               string
	WaitForActiveShards   string

	commonParams
}

// Create creates an index with optional settings and mappings.
func (ic *IndicesClient) Create(ctx context.Context, req IndicesCreateRequest) (*Response, error) {
	args := Arguments{}
	args.SetString("index", req.Index)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("master_timeout", req.MasterTimeout)
	args.SetString("timeout", req.Timeout)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	req.apply(args)
	return ic.c.do(ctx, opIndicesCreate, args, req.Header, req.Body)
}

var opIndicesDelete = register(&Operation{
	Name:   "indices.delete",
	Method: http.MethodDelete,
	URL:    "/{index}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list", Required: true},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
		{Name: "timeout", In: InQuery, Type: "time", Default: "30s"},
	},
	Description: "Deletes one or more indices.",
})

// IndicesDeleteRequest configures IndicesClient.Delete.
type IndicesDeleteRequest struct {
	Index []string

	AllowNoIndices        *bool
	ClusterManagerTimeout string
	ExpandWildcards       string
	IgnoreUnavailable     *bool
	MasterTimeout         string
	Timeout               string

	commonParams
}

// Delete deletes one or more indices.
func (ic *IndicesClient) Delete(ctx context.Context, req IndicesDeleteRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetString("master_timeout", req.MasterTimeout)
	args.SetString("timeout", req.Timeout)
	req.apply(args)
	return ic.c.do(ctx, opIndicesDelete, args, req.Header, nil)
}

var opIndicesExists = register(&Operation{
	Name:   "indices.exists",
	Method: http.MethodHead,
	URL:    "/{index}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list", Required: true},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "flat_settings", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "include_defaults", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "local", In: InQuery, Type: "boolean", Default: "false"},
	},
	Description: "Returns whether one or more indices exist.",
})

// IndicesExistsRequest configures IndicesClient.Exists.
type IndicesExistsRequest struct {
	Index []string

	AllowNoIndices    *bool
	ExpandWildcards   string
	FlatSettings      *bool
	IgnoreUnavailable *bool
	IncludeDefaults   *bool
	Local             *bool

	commonParams
}

// Exists returns whether one or more indices exist.
func (ic *IndicesClient) Exists(ctx context.Context, req IndicesExistsRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("flat_settings", req.FlatSettings)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetBool("include_defaults", req.IncludeDefaults)
	args.SetBool("local", req.Local)
	req.apply(args)
	return ic.c.do(ctx, opIndicesExists, args, req.Header, nil)
}

var opIndicesGet = register(&Operation{
	Name:   "indices.get",
	Method: http.MethodGet,
	URL:    "/{index}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list", Required: true},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "flat_settings", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "include_defaults", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "local", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
	},
	Description: "Returns information about one or more indices.",
})

// IndicesGetRequest configures IndicesClient.Get.
type IndicesGetRequest struct {
	Index []string

	AllowNoIndices        *bool
	ClusterManagerTimeout string
	ExpandWildcards       string
	FlatSettings          *bool
	IgnoreUnavailable     *bool
	IncludeDefaults       *bool
	Local                 *bool
	MasterTimeout         string

	commonParams
}

// Get returns information about one or more indices.
func (ic *IndicesClient) Get(ctx context.Context, req IndicesGetRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("flat_settings", req.FlatSettings)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetBool("include_defaults", req.IncludeDefaults)
	args.SetBool("local", req.Local)
	args.SetString("master_timeout", req.MasterTimeout)
	req.apply(args)
	return ic.c.do(ctx, opIndicesGet, args, req.Header, nil)
}

var opIndicesRefresh = register(&Operation{
	Name:   "indices.refresh",
	Method: http.MethodPost,
	URL:    "/{index}/_refresh",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list",
			Description: "Comma-separated list of indices to refresh; omit to refresh all."},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
	},
	Description: "Makes recent operations visible to search.",
})

// IndicesRefreshRequest configures IndicesClient.Refresh.
type IndicesRefreshRequest struct {
	Index []string

	AllowNoIndices    *bool
	ExpandWildcards   string
	IgnoreUnavailable *bool

	commonParams
}

// Refresh makes recent operations visible to search.
func (ic *IndicesClient) Refresh(ctx context.Context, req IndicesRefreshRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	req.apply(args)
	return ic.c.do(ctx, opIndicesRefresh, args, req.Header, nil)
}

var opIndicesPutMapping = register(&Operation{
	Name:   "indices.put_mapping",
	Method: http.MethodPut,
	URL:    "/{index}/_mapping",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list", Required: true},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
		{Name: "timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "write_index_only", In: InQuery, Type: "boolean", Default: "false"},
	},
	Description: "Updates the field mappings of one or more indices.",
})

// IndicesPutMappingRequest configures IndicesClient.PutMapping.
type IndicesPutMappingRequest struct {
	Index []string
	Body  any

	AllowNoIndices        *bool
	ClusterManagerTimeout string
	ExpandWildcards       string
	IgnoreUnavailable     *bool
	MasterTimeout         string
	Timeout               string
	WriteIndexOnly        *bool

	commonParams
}

// PutMapping updates the field mappings of one or more indices.
func (ic *IndicesClient) PutMapping(ctx context.Context, req IndicesPutMappingRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetString("master_timeout", req.MasterTimeout)
	args.SetString("timeout", req.Timeout)
	args.SetBool("write_index_only", req.WriteIndexOnly)
	req.apply(args)
	if req.Body == nil {
		return nil, missingArgument("body")
	}
	return ic.c.do(ctx, opIndicesPutMapping, args, req.Header, req.Body)
}

var opIndicesGetMapping = register(&Operation{
	Name:   "indices.get_mapping",
	Method: http.MethodGet,
	URL:    "/{index}/_mapping",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list",
			Description: "Comma-separated list of indices; omit for all."},
		{Name: "allow_no_indices", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "ignore_unavailable", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "local", In: InQuery, Type: "boolean", Default: "false",
			Deprecated: "This parameter is a no-op and field mappings are always retrieved locally."},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
	},
	Description: "Returns the field mappings of one or more indices.",
})

// IndicesGetMappingRequest configures IndicesClient.GetMapping.
type IndicesGetMappingRequest struct {
	Index []string

	AllowNoIndices        *bool
	ClusterManagerTimeout string
	ExpandWildcards       string
	IgnoreUnavailable     *bool
	Local                 *bool
	MasterTimeout         string

	commonParams
}

// GetMapping returns the field mappings of one or more indices.
func (ic *IndicesClient) GetMapping(ctx context.Context, req IndicesGetMappingRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetBool("allow_no_indices", req.AllowNoIndices)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetBool("ignore_unavailable", req.IgnoreUnavailable)
	args.SetBool("local", req.Local)
	args.SetString("master_timeout", req.MasterTimeout)
	req.apply(args)
	return ic.c.do(ctx, opIndicesGetMapping, args, req.Header, nil)
}
