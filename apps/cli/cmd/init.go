package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/core/config"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter options file",
	Long: `Create a .pwconfig.yaml options file with every default spelled out.

Workers are left out so the local worker count keeps following the
number of logical CPUs.

Examples:
  pwconfig init
  pwconfig init e2e --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing options file")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	optionsFile := filepath.Join(dir, config.OptionsFilenames[0])

	if !forceInit {
		if _, err := os.Stat(optionsFile); err == nil {
			return usageError("file already exists: %s (use --force to overwrite)", optionsFile)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := config.StarterOptions().Save(optionsFile); err != nil {
		return fmt.Errorf("failed to create options file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", optionsFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nNext steps:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  1. Edit %s to match your project\n", optionsFile)
	fmt.Fprintf(cmd.OutOrStdout(), "  2. Run: pwconfig generate --out playwright.config.json\n")

	return nil
}
