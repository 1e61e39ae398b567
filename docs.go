package opensearch

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteCatalogYAML writes the operation descriptors as a YAML document.
// The output carries everything a caller needs to audit the surface:
// methods, URL templates, parameters with defaults and allowed values,
// stability tiers, and deprecation messages.
func WriteCatalogYAML(w io.Writer, ops []*Operation) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(struct {
		Operations []*Operation `yaml:"operations"`
	}{Operations: ops})
}

// WriteCatalogMarkdown renders the operation descriptors as Markdown
// reference documentation.
func WriteCatalogMarkdown(w io.Writer, ops []*Operation) error {
	for _, op := range ops {
		if err := writeOperationMarkdown(w, op); err != nil {
			return err
		}
	}
	return nil
}

// WriteOperationMarkdown renders one operation descriptor as Markdown.
func WriteOperationMarkdown(w io.Writer, op *Operation) error {
	return writeOperationMarkdown(w, op)
}

func writeOperationMarkdown(w io.Writer, op *Operation) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", op.Name)
	fmt.Fprintf(&b, "`%s %s`\n\n", op.Method, op.URL)
	if op.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", op.Description)
	}
	if op.Stability != StabilityStable {
		fmt.Fprintf(&b, "Stability: **%s**\n\n", op.Stability)
	}
	if op.Deprecated != "" {
		fmt.Fprintf(&b, "**Deprecated.** %s\n\n", op.Deprecated)
	}
	if op.Bulk {
		b.WriteString("Body: newline-delimited records, one terminator after every record.\n\n")
	}

	if len(op.Params) > 0 {
		b.WriteString("| Parameter | In | Type | Default | Description |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, p := range op.Params {
			desc := p.Description
			if len(p.Values) > 0 {
				desc = strings.TrimSuffix(desc, ".")
				if desc != "" {
					desc += ". "
				}
				desc += "Valid values: " + strings.Join(p.Values, ", ") + "."
			}
			if p.Deprecated != "" {
				desc = "**Deprecated.** " + p.Deprecated + " " + desc
			}
			name := p.Name
			if p.Required {
				name += " (required)"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				name, p.In, p.Type, p.Default, strings.TrimSpace(desc))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
