package opensearch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	opensearch "github.com/fidelity-contributions/opensearch-client-go"
)

func TestWriteOperationMarkdown(t *testing.T) {
	t.Parallel()

	op, ok := opensearch.LookupOperation("indices.create")
	require.True(t, ok)

	var b strings.Builder
	require.NoError(t, opensearch.WriteOperationMarkdown(&b, op))
	out := b.String()

	assert.Contains(t, out, "## indices.create")
	assert.Contains(t, out, "`PUT /{index}`")
	assert.Contains(t, out, "index (required)")
	assert.Contains(t, out, "master_timeout")
	assert.Contains(t, out, "**Deprecated.** Deprecated in favor of 'cluster_manager_timeout'.")
}

func TestWriteOperationMarkdown_enum_values(t *testing.T) {
	t.Parallel()

	op, ok := opensearch.LookupOperation("cluster.health")
	require.True(t, ok)

	var b strings.Builder
	require.NoError(t, opensearch.WriteOperationMarkdown(&b, op))
	assert.Contains(t, b.String(), "Valid values: green, yellow, red.")
}

func TestWriteOperationMarkdown_stability(t *testing.T) {
	t.Parallel()

	op, ok := opensearch.LookupOperation("sql.get_stats")
	require.True(t, ok)

	var b strings.Builder
	require.NoError(t, opensearch.WriteOperationMarkdown(&b, op))
	assert.Contains(t, b.String(), "Stability: **experimental**")
}

func TestWriteOperationMarkdown_bulk_framing_note(t *testing.T) {
	t.Parallel()

	op, ok := opensearch.LookupOperation("bulk")
	require.True(t, ok)

	var b strings.Builder
	require.NoError(t, opensearch.WriteOperationMarkdown(&b, op))
	assert.Contains(t, b.String(), "newline-delimited records")
}

func TestWriteCatalogMarkdown_covers_every_operation(t *testing.T) {
	t.Parallel()

	ops := opensearch.Catalog()

	var b strings.Builder
	require.NoError(t, opensearch.WriteCatalogMarkdown(&b, ops))
	out := b.String()

	for _, op := range ops {
		assert.Contains(t, out, "## "+op.Name+"\n")
	}
}

func TestWriteCatalogYAML_round_trip(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, opensearch.WriteCatalogYAML(&b, opensearch.Catalog()))

	var decoded struct {
		Operations []struct {
			Name      string `yaml:"name"`
			Method    string `yaml:"method"`
			URL       string `yaml:"url"`
			Stability string `yaml:"stability"`
			Bulk      bool   `yaml:"bulk"`
		} `yaml:"operations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(b.String()), &decoded))

	byName := map[string]int{}
	for i, op := range decoded.Operations {
		byName[op.Name] = i
	}

	require.Contains(t, byName, "index")
	idx := decoded.Operations[byName["index"]]
	assert.Equal(t, "PUT", idx.Method)
	assert.Equal(t, "/{index}/_doc/{id}", idx.URL)
	assert.Equal(t, "stable", idx.Stability)
	assert.False(t, idx.Bulk)

	require.Contains(t, byName, "create_pit")
	pit := decoded.Operations[byName["create_pit"]]
	assert.Equal(t, "POST", pit.Method)
	assert.Equal(t, "/{index}/_search/point_in_time", pit.URL)

	require.Contains(t, byName, "msearch")
	assert.True(t, decoded.Operations[byName["msearch"]].Bulk)
}
