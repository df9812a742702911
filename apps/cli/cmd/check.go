package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/snapshot"
)

// DefaultCheckFile is the committed configuration compared by check.
const DefaultCheckFile = "playwright.config.json"

var updateFlag bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a committed configuration for drift",
	Long: `Check that a committed JSON configuration matches what generate
would produce with the current options. Exits with code 1 when the
file is out of date.

Examples:
  pwconfig check
  pwconfig check e2e/playwright.config.json --ci
  pwconfig check --update`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkCommand,
}

func init() {
	addOptionFlags(checkCmd)

	checkCmd.Flags().BoolVarP(&updateFlag, "update", "u", false, "Rewrite the file instead of reporting drift")
}

func checkCommand(cmd *cobra.Command, args []string) error {
	file := DefaultCheckFile
	if len(args) == 1 {
		file = args[0]
	}
	if !strings.EqualFold(filepath.Ext(file), ".json") {
		return usageError("check only compares JSON files, got %s", file)
	}

	cfg, _, _, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	manager := snapshot.NewManager(file, updateFlag)
	result := manager.Compare(cfg)
	if result.Err != nil {
		return withExitCode(ExitConfigError, result.Err)
	}

	formatter := newFormatter(cmd.OutOrStdout())

	switch {
	case result.IsNew:
		formatter.FormatSuccess(fmt.Sprintf("Created %s", manager.Path()))
	case result.WasUpdated:
		msg := fmt.Sprintf("Updated %s", manager.Path())
		if len(result.Changed) > 0 {
			msg += " (" + strings.Join(result.Changed, ", ") + ")"
		}
		formatter.FormatSuccess(msg)
	case result.Passed:
		formatter.FormatSuccess(fmt.Sprintf("%s is up to date", manager.Path()))
	default:
		return withExitCode(ExitDrift, fmt.Errorf("%s: %s", manager.Path(), result.Message))
	}
	return nil
}
