package opensearch

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Bool returns a pointer to v. Pointer-typed arguments distinguish an
// explicit false from an absent value; an explicit false is serialized,
// an absent value is omitted.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, preserving an explicit zero.
func Int(v int) *int { return &v }

// Arguments is the set of present call arguments for one invocation,
// already rendered to their wire form. Absent arguments never enter the
// map, so the binder only ever sees values the caller actually set.
type Arguments map[string]string

// SetString records v unless it is empty.
func (a Arguments) SetString(name, v string) {
	if v != "" {
		a[name] = v
	}
}

// SetBool records v if present, keeping explicit false.
func (a Arguments) SetBool(name string, v *bool) {
	if v != nil {
		a[name] = strconv.FormatBool(*v)
	}
}

// SetInt records v if present, keeping explicit zero.
func (a Arguments) SetInt(name string, v *int) {
	if v != nil {
		a[name] = strconv.Itoa(*v)
	}
}

// SetList records v as a comma-separated value unless it is empty.
func (a Arguments) SetList(name string, v []string) {
	if len(v) > 0 {
		a[name] = strings.Join(v, ",")
	}
}

// boundRequest is the binder's output: a fully resolved path plus the
// query and header mappings for one call.
type boundRequest struct {
	path   string
	params url.Values
	header http.Header
}

// bind resolves op's URL template and splits args into query parameters
// and headers. It fails with ErrMissingArgument before any serialization
// or dispatch when a required parameter or path segment is absent.
//
// Unknown values on enumerated parameters pass through untouched: the
// descriptor's Values list documents the API, it does not police callers.
func (c *Client) bind(ctx context.Context, op *Operation, args Arguments, header http.Header) (*boundRequest, error) {
	if op.Deprecated != "" {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "deprecated operation",
			slog.String("operation", op.Name),
			slog.String("message", op.Deprecated),
		)
	}

	path, pathArgs, err := resolvePath(op, args)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	hdr := http.Header{}
	for k, v := range header {
		hdr[k] = v
	}

	for _, spec := range op.Params {
		if spec.In == InPath {
			continue
		}
		val, ok := args[spec.Name]
		if !ok {
			if spec.Required {
				return nil, missingArgument(spec.Name)
			}
			continue
		}
		if spec.Deprecated != "" {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "deprecated parameter",
				slog.String("operation", op.Name),
				slog.String("param", spec.Name),
				slog.String("message", spec.Deprecated),
			)
		}
		switch spec.In {
		case InHeader:
			hdr.Set(spec.Name, val)
		default:
			params.Set(spec.Name, val)
		}
	}

	// Arguments without a declared spec ride along as query parameters.
	// The server, not the client, decides whether it understands them.
	for name, val := range args {
		if pathArgs[name] || op.param(name) != nil {
			continue
		}
		params.Set(name, val)
	}

	return &boundRequest{path: path, params: params, header: hdr}, nil
}

// resolvePath substitutes the {name} segments of op's URL template. A
// placeholder declared optional is dropped together with its segment;
// every other placeholder must resolve or the bind fails. The returned
// set records which argument names were consumed by the path.
func resolvePath(op *Operation, args Arguments) (string, map[string]bool, error) {
	used := make(map[string]bool)
	segs := strings.Split(op.URL, "/")
	out := segs[:0]
	for _, seg := range segs {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			out = append(out, seg)
			continue
		}
		name := seg[1 : len(seg)-1]
		val, ok := args[name]
		if !ok {
			if spec := op.param(name); spec != nil && !spec.Required {
				continue // optional segment drops out entirely
			}
			return "", nil, missingArgument(name)
		}
		used[name] = true
		out = append(out, escapePathSegment(val))
	}
	path := strings.Join(out, "/")
	if path == "" {
		path = "/"
	}
	return path, used, nil
}

// escapePathSegment escapes one substituted segment, keeping commas
// literal so multi-index values stay readable server-side.
func escapePathSegment(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, ",")
}
