package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/core/builder"
	"github.com/wpazderski/pwconfig/packages/core/config"
	"github.com/wpazderski/pwconfig/packages/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <options-file>...",
	Short: "Validate options files without generating anything",
	Long: `Validate options files: each file is parsed, built into a
configuration and checked against the configuration schema.
Environment variables and flags are not applied.

Examples:
  pwconfig validate .pwconfig.yaml
  pwconfig validate e2e/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd.OutOrStdout())

	hasErrors := false
	for _, file := range args {
		if err := validateOptionsFile(file); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			formatter.FormatSuccess(fmt.Sprintf("Valid: %s", file))
		}
	}

	if hasErrors {
		return configError("validation failed")
	}

	return nil
}

func validateOptionsFile(path string) error {
	opts, _, err := config.LoadOptions(path)
	if err != nil {
		return err
	}

	cfg, err := builder.Build(opts)
	if err != nil {
		return err
	}

	return schema.Validate(cfg)
}
