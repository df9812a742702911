package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/output"
	"github.com/wpazderski/pwconfig/packages/playwright"
)

var (
	outFlag     string
	formatFlag  string
	queryFlag   string
	summaryFlag bool
	watchFlag   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the Playwright configuration",
	Long: `Generate the Playwright configuration from the resolved options.

The configuration is written to stdout as JSON unless --out or --format
say otherwise. The format is inferred from the --out extension
(.json, .yaml/.yml, .ts).

Examples:
  pwconfig generate
  pwconfig generate --ci --out playwright.config.json
  pwconfig generate --format ts > playwright.config.ts
  pwconfig generate --query use.baseURL
  pwconfig generate --summary --viewport 1280x720
  pwconfig generate --watch --out playwright.config.json`,
	Args: cobra.NoArgs,
	RunE: generateCommand,
}

func init() {
	addOptionFlags(generateCmd)

	generateCmd.Flags().StringVarP(&outFlag, "out", "o", getEnvString("PWCONFIG_OUT", ""), "Write the configuration to a file (default: stdout) (env: PWCONFIG_OUT)")
	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", getEnvString("PWCONFIG_FORMAT", ""), "Output format: "+output.FormatNames()+" (env: PWCONFIG_FORMAT)")
	generateCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Print a single value selected by a gjson path, e.g. use.baseURL")
	generateCmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a human-readable summary instead of the configuration")
	generateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Regenerate whenever the options file changes")
}

func generateCommand(cmd *cobra.Command, args []string) error {
	if queryFlag != "" && summaryFlag {
		return usageError("--query and --summary cannot be combined")
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}

	cfg, opts, path, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := emit(cmd, cfg, opts.IsCI, format); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	if path == "" {
		return usageError("--watch needs an options file (run pwconfig init or pass --config)")
	}

	return watchAndRegenerate(cmd, path, format)
}

func resolveFormat() (output.Format, error) {
	if formatFlag != "" {
		f, err := output.ParseFormat(formatFlag)
		if err != nil {
			return "", withExitCode(ExitUsageError, err)
		}
		return f, nil
	}
	if outFlag != "" {
		return output.FormatForPath(outFlag), nil
	}
	return output.FormatJSON, nil
}

func emit(cmd *cobra.Command, cfg *playwright.Config, isCI bool, format output.Format) error {
	switch {
	case queryFlag != "":
		value, err := output.Query(cfg, queryFlag)
		if err != nil {
			return withExitCode(ExitUsageError, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil

	case summaryFlag:
		newFormatter(cmd.OutOrStdout()).FormatConfig(cfg, isCI)
		return nil

	case outFlag != "":
		if err := writeConfigFile(outFlag, cfg, format); err != nil {
			return err
		}
		newFormatter(cmd.ErrOrStderr()).FormatSuccess(fmt.Sprintf("Wrote %s (%s)", outFlag, format))
		return nil

	default:
		return output.Encode(cmd.OutOrStdout(), cfg, format)
	}
}

func writeConfigFile(path string, cfg *playwright.Config, format output.Format) error {
	var buf bytes.Buffer
	if err := output.Encode(&buf, cfg, format); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func watchAndRegenerate(cmd *cobra.Command, path string, format output.Format) error {
	w, err := newOptionsWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := newFormatter(cmd.ErrOrStderr())
	fmt.Fprintf(cmd.ErrOrStderr(), "\nWatching %s for changes... (press Ctrl+C to stop)\n\n", path)

	return w.Run(ctx, func() {
		log.WithField("path", path).Debug("options file changed")

		cfg, opts, _, err := buildConfig(cmd)
		if err != nil {
			stderr.FormatError(err)
			return
		}
		if err := emit(cmd, cfg, opts.IsCI, format); err != nil {
			stderr.FormatError(err)
		}
	})
}
