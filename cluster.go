package opensearch

import (
	"context"
	"net/http"
)

// ClusterClient groups the cluster APIs.
type ClusterClient struct {
	c *Client
}

var opClusterHealth = register(&Operation{
	Name:   "cluster.health",
	Method: http.MethodGet,
	URL:    "/_cluster/health/{index}",
	Params: []ParamSpec{
		{Name: "index", In: InPath, Type: "list",
			Description: "Limit the health report to these indices; omit for the whole cluster."},
		{Name: "cluster_manager_timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "expand_wildcards", In: InQuery, Type: "enum", Values: []string{"all", "open", "closed", "hidden", "none"}, Default: "open"},
		{Name: "level", In: InQuery, Type: "enum", Values: []string{"cluster", "indices", "shards", "awareness_attributes"}, Default: "cluster"},
		{Name: "local", In: InQuery, Type: "boolean", Default: "false",
			Description: "Whether to return information from the local node only."},
		{Name: "master_timeout", In: InQuery, Type: "time", Default: "30s",
			Deprecated: masterTimeoutDeprecation},
		{Name: "timeout", In: InQuery, Type: "time", Default: "30s"},
		{Name: "wait_for_active_shards", In: InQuery, Type: "string", Default: "0"},
		{Name: "wait_for_events", In: InQuery, Type: "enum", Values: []string{"immediate", "urgent", "high", "normal", "low", "languid"}},
		{Name: "wait_for_no_initializing_shards", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "wait_for_no_relocating_shards", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "wait_for_nodes", In: InQuery, Type: "string"},
		{Name: "wait_for_status", In: InQuery, Type: "enum", Values: []string{"green", "yellow", "red"},
			Description: "Wait until the cluster reaches at least this status."},
	},
	Description: "Returns the health status of the cluster.",
})

// ClusterHealthRequest configures ClusterClient.Health.
type ClusterHealthRequest struct {
	Index []string

	ClusterManagerTimeout       string
	ExpandWildcards             string
	Level                       string
	Local                       *bool
	MasterTimeout               string
	Timeout                     string
	WaitForActiveShards         string
	WaitForEvents               string
	WaitForNoInitializingShards *bool
	WaitForNoRelocatingShards   *bool
	WaitForNodes                string
	WaitForStatus               string

	commonParams
}

// Health returns the health status of the cluster.
func (cc *ClusterClient) Health(ctx context.Context, req ClusterHealthRequest) (*Response, error) {
	args := Arguments{}
	args.SetList("index", req.Index)
	args.SetString("cluster_manager_timeout", req.ClusterManagerTimeout)
	args.SetString("expand_wildcards", req.ExpandWildcards)
	args.SetString("level", req.Level)
	args.SetBool("local", req.Local)
	args.SetString("master_timeout", req.MasterTimeout)
	args.SetString("timeout", req.Timeout)
	args.SetString("wait_for_active_shards", req.WaitForActiveShards)
	args.SetString("wait_for_events", req.WaitForEvents)
	args.SetBool("wait_for_no_initializing_shards", req.WaitForNoInitializingShards)
	args.SetBool("wait_for_no_relocating_shards", req.WaitForNoRelocatingShards)
	args.SetString("wait_for_nodes", req.WaitForNodes)
	args.SetString("wait_for_status", req.WaitForStatus)
	req.apply(args)
	return cc.c.do(ctx, opClusterHealth, args, req.Header, nil)
}

var opClusterStats = register(&Operation{
	Name:   "cluster.stats",
	Method: http.MethodGet,
	URL:    "/_cluster/stats",
	Params: []ParamSpec{
		{Name: "flat_settings", In: InQuery, Type: "boolean", Default: "false"},
		{Name: "timeout", In: InQuery, Type: "time", Default: "30s"},
	},
	Description: "Returns high-level statistics for the cluster.",
})

// ClusterStatsRequest configures ClusterClient.Stats.
type ClusterStatsRequest struct {
	FlatSettings *bool
	Timeout      string

	commonParams
}

// Stats returns high-level statistics for the cluster.
func (cc *ClusterClient) Stats(ctx context.Context, req ClusterStatsRequest) (*Response, error) {
	args := Arguments{}
	args.SetBool("flat_settings", req.FlatSettings)
	args.SetString("timeout", req.Timeout)
	req.apply(args)
	return cc.c.do(ctx, opClusterStats, args, req.Header, nil)
}
