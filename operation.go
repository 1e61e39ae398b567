package opensearch

import (
	"slices"
	"sort"
	"strings"
)

// Stability is the support tier of an operation. It is surfaced in
// generated documentation and has no runtime effect.
type Stability string

// Stability tiers.
const (
	StabilityStable       Stability = "stable"
	StabilityExperimental Stability = "experimental"
	StabilityDeprecated   Stability = "deprecated"
)

// Location says where a bound parameter ends up in the request.
type Location string

// Parameter locations.
const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
)

// ParamSpec describes one declared parameter of an operation.
//
// Default and Values are documentation only: the binder never injects a
// default and never rejects a value outside Values. The server remains the
// authority on parameter semantics, and new server-side values must not
// break old clients.
type ParamSpec struct {
	Name        string   `yaml:"name"`
	In          Location `yaml:"in"`
	Type        string   `yaml:"type,omitempty"`
	Required    bool     `yaml:"required,omitempty"`
	Default     string   `yaml:"default,omitempty"`
	Values      []string `yaml:"values,omitempty"`
	Deprecated  string   `yaml:"deprecated,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// Operation is the static descriptor of one REST API endpoint. Descriptors
// are built once at package init and never mutated afterwards.
type Operation struct {
	Name        string      `yaml:"name"`
	Method      string      `yaml:"method"`
	URL         string      `yaml:"url"`
	Params      []ParamSpec `yaml:"params,omitempty"`
	Bulk        bool        `yaml:"bulk,omitempty"`
	Stability   Stability   `yaml:"stability"`
	Deprecated  string      `yaml:"deprecated,omitempty"`
	Description string      `yaml:"description,omitempty"`
}

// param returns the declared parameter named name, or nil if the
// operation does not declare it.
func (op *Operation) param(name string) *ParamSpec {
	for i := range op.Params {
		if op.Params[i].Name == name {
			return &op.Params[i]
		}
	}
	return nil
}

// placeholders returns the {name} segments of the URL template in order.
func (op *Operation) placeholders() []string {
	var names []string
	for _, seg := range strings.Split(op.URL, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			names = append(names, seg[1:len(seg)-1])
		}
	}
	return names
}

// commonParamSpecs are accepted by every operation.
var commonParamSpecs = []ParamSpec{
	{Name: "error_trace", In: InQuery, Type: "boolean", Default: "false",
		Description: "Whether to include the stack trace of returned errors."},
	{Name: "filter_path", In: InQuery, Type: "list",
		Description: "Comma-separated list of filters used to reduce the response."},
	{Name: "human", In: InQuery, Type: "boolean", Default: "true",
		Description: "Whether to return human readable values for statistics."},
	{Name: "pretty", In: InQuery, Type: "boolean", Default: "false",
		Description: "Whether to pretty format the returned JSON response."},
}

var catalog = make(map[string]*Operation)

// register adds the common parameters to op and places it in the catalog.
// Called from package-level descriptor variables only.
func register(op *Operation) *Operation {
	if op.Stability == "" {
		op.Stability = StabilityStable
	}
	op.Params = append(op.Params, commonParamSpecs...)
	catalog[op.Name] = op
	return op
}

// clone returns a copy with its own parameter table, so callers cannot
// mutate the registered descriptor through it.
func (op *Operation) clone() *Operation {
	out := *op
	out.Params = slices.Clone(op.Params)
	for i := range out.Params {
		out.Params[i].Values = slices.Clone(out.Params[i].Values)
	}
	return &out
}

// LookupOperation returns a copy of the descriptor for name, if
// registered.
func LookupOperation(name string) (*Operation, bool) {
	op, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return op.clone(), true
}

// Catalog returns a copy of every registered operation descriptor sorted
// by name.
func Catalog() []*Operation {
	ops := make([]*Operation, 0, len(catalog))
	for _, op := range catalog {
		ops = append(ops, op.clone())
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}
