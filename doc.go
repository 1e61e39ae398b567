// Package opensearch is a low-level client for the OpenSearch REST API.
// Every endpoint is described by a static Operation descriptor (HTTP
// method, URL template, declared parameters, stability tier) and every
// call runs through one bind/serialize/dispatch pipeline:
//
//	resp, err := client.Index(ctx, opensearch.IndexRequest{
//	    Index: "logs",
//	    ID:    "1",
//	    Body:  map[string]any{"msg": "hi"},
//	})
//
// The binder resolves URL placeholders, drops absent parameters, and keeps
// explicit false/zero values (use the Bool and Int helpers), so a request
// carries exactly what the caller set and nothing else. Bodies are encoded
// by a pluggable Serializer; bulk bodies use newline-delimited JSON with a
// terminator after every record.
//
// The client performs exactly one Transport call per invocation and returns
// the transport's result untouched. Retries, pooling, node discovery, and
// authentication policy belong to the Transport, not to this package. The
// default transport is a thin net/http wrapper with an optional client-side
// throttle.
//
// Deprecated operations and parameters emit a structured warning on the
// client's slog.Logger; they never change the request. The full operation
// catalog, including stability and deprecation metadata, can be rendered
// with WriteCatalogMarkdown or WriteCatalogYAML.
package opensearch
