package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// schemaCmd represents the schema command.
var schemaCmd = newSchemaCmd()

func newSchemaCmd() *cobra.Command {
	var scan bool

	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the results",
		Long:  "Print the JSON Schema (draft 2020-12) of the target list, or of the scan result with --scan.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Schema(domain.SchemaArgs{Scan: scan, Output: m.Path(output)})
		},
	}
	cmd.Flags().BoolVar(&scan, "scan", false, "print the schema of the scan command's result")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema to FILE instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
