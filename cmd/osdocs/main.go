// Command osdocs renders the client's operation catalog as reference
// documentation.
//
//	osdocs list                      — one line per operation
//	osdocs show index                — full docs for one operation
//	osdocs show --format yaml index  — machine-readable descriptor
//	osdocs dump                      — full catalog, markdown or yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	opensearch "github.com/fidelity-contributions/opensearch-client-go"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "osdocs:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "osdocs",
		Short:         "Browse the OpenSearch client operation catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newListCmd(), newShowCmd(), newDumpCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every operation with its method and URL template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, op := range opensearch.Catalog() {
				note := ""
				if op.Stability != opensearch.StabilityStable {
					note = "  [" + string(op.Stability) + "]"
				}
				if op.Deprecated != "" {
					note += "  [deprecated]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-7s %s%s\n", op.Name, op.Method, op.URL, note)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <operation>",
		Short: "Show the full descriptor of one operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := opensearch.LookupOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if format == "yaml" {
				return opensearch.WriteCatalogYAML(cmd.OutOrStdout(), []*opensearch.Operation{op})
			}
			return opensearch.WriteOperationMarkdown(cmd.OutOrStdout(), op)
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or yaml")
	return cmd
}

func newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Render the whole catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops := opensearch.Catalog()
			if format == "yaml" {
				return opensearch.WriteCatalogYAML(cmd.OutOrStdout(), ops)
			}
			return opensearch.WriteCatalogMarkdown(cmd.OutOrStdout(), ops)
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or yaml")
	return cmd
}
