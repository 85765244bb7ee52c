package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lunar/internal/infrastructure/config"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of bindings documents",
	Long: `Print the JSON Schema describing bindings documents, for editor completion
and validation.

Examples:
  lunar schema                          # Print to stdout
  lunar schema -o bindings.schema.json  # Write to a file`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to this file")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	if schemaOutput == "" {
		return writeSchema(cmd.OutOrStdout())
	}

	f, err := os.Create(schemaOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", schemaOutput, err)
	}
	if err := writeSchema(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeSchema(w io.Writer) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
