package cmd

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/output"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	verboseFlag bool
	noColorFlag bool
)

// log is the diagnostics logger. It writes to stderr so that generated
// configurations on stdout stay clean.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "pwconfig",
	Short: "Generate the base Playwright configuration for a project.",
	Long: `pwconfig builds a ready-to-use Playwright test runner configuration
from a handful of options: CI mode, test directory, retries, workers,
the web server to start and the viewport. Options come from an options
file, PWCONFIG_* environment variables and flags, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		newFormatter(stderr).FormatError(err)
	}
	return exitCode(err)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("PWCONFIG_VERBOSE", false), "Log how options were resolved (env: PWCONFIG_VERBOSE)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("PWCONFIG_NO_COLOR", false), "Disable colored output (env: PWCONFIG_NO_COLOR)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func setupLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    noColorFlag,
	})
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func newFormatter(w io.Writer) *output.ConsoleFormatter {
	return output.NewConsoleFormatter(
		output.WithWriter(w),
		output.WithNoColor(noColorFlag),
	)
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return defaultVal
}
