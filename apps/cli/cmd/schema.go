package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema generated configurations are checked against",
	Long: `Print the JSON Schema (draft-07) that generate, check and validate use
to check a built configuration. Point an editor at it to get completion
and validation for a committed playwright.config.json.

Examples:
  pwconfig schema > playwright.config.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(schema.Schema())
		return err
	},
}
