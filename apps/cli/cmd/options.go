package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wpazderski/pwconfig/packages/core/builder"
	"github.com/wpazderski/pwconfig/packages/core/config"
	"github.com/wpazderski/pwconfig/packages/core/env"
	"github.com/wpazderski/pwconfig/packages/playwright"
	"github.com/wpazderski/pwconfig/packages/schema"
)

// Option flags shared by generate and check
var (
	configFlag           string
	envFileFlag          string
	ciFlag               bool
	testDirFlag          string
	fullyParallelFlag    bool
	retriesFlag          string
	workersFlag          string
	testIDAttributeFlag  string
	webServerURLFlag     string
	webServerCommandFlag string
	viewportFlag         string
)

func addOptionFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.StringVarP(&configFlag, "config", "c", getEnvString("PWCONFIG_CONFIG", ""), "Path to options file (default: search the current directory) (env: PWCONFIG_CONFIG)")
	f.StringVar(&envFileFlag, "env-file", getEnvString("PWCONFIG_ENV_FILE", ""), "Path to .env file (default: .env when present) (env: PWCONFIG_ENV_FILE)")

	f.BoolVar(&ciFlag, "ci", false, "Build the CI variant (default: taken from the CI environment variable)")
	f.StringVar(&testDirFlag, "test-dir", "", "Directory containing the tests (default \""+config.DefaultTestDir+"\")")
	f.BoolVar(&fullyParallelFlag, "fully-parallel", config.DefaultFullyParallel, "Run tests within a file in parallel")
	f.StringVar(&retriesFlag, "retries", "", "Retries as ci,nonCi (default \""+config.DefaultRetries().String()+"\")")
	f.StringVar(&workersFlag, "workers", "", "Workers as ci,nonCi (default: 1 on CI, one per logical CPU locally)")
	f.StringVar(&testIDAttributeFlag, "test-id-attribute", "", "Attribute used by getByTestId (default \""+config.DefaultTestIDAttribute+"\")")
	f.StringVar(&webServerURLFlag, "web-server-url", "", "URL of the application under test (default \""+config.DefaultWebServerURL+"\")")
	f.StringVar(&webServerCommandFlag, "web-server-command", "", "Command that starts the application (default \""+config.DefaultWebServerCommand+"\")")
	f.StringVar(&viewportFlag, "viewport", "", "Viewport as WIDTHxHEIGHT (default \""+config.DefaultViewport().String()+"\")")
}

// optionsFromFlags returns the options set explicitly on the command line.
// Flags left at their default do not override lower layers.
func optionsFromFlags(cmd *cobra.Command) (*config.Options, error) {
	f := cmd.Flags()
	opts := &config.Options{}

	if f.Changed("test-dir") {
		opts.TestDir = config.StringPtr(testDirFlag)
	}
	if f.Changed("fully-parallel") {
		opts.FullyParallel = config.BoolPtr(fullyParallelFlag)
	}
	if f.Changed("retries") {
		p, err := config.ParsePerEnv(retriesFlag)
		if err != nil {
			return nil, usageError("--retries: %v", err)
		}
		opts.Retries = &p
	}
	if f.Changed("workers") {
		p, err := config.ParsePerEnv(workersFlag)
		if err != nil {
			return nil, usageError("--workers: %v", err)
		}
		opts.Workers = &p
	}
	if f.Changed("test-id-attribute") {
		opts.TestIDAttribute = config.StringPtr(testIDAttributeFlag)
	}
	if f.Changed("web-server-url") {
		opts.WebServerURL = config.StringPtr(webServerURLFlag)
	}
	if f.Changed("web-server-command") {
		opts.WebServerCommand = config.StringPtr(webServerCommandFlag)
	}
	if f.Changed("viewport") {
		v, err := config.ParseViewport(viewportFlag)
		if err != nil {
			return nil, usageError("--viewport: %v", err)
		}
		opts.Viewport = &v
	}

	return opts, nil
}

// loadOptions layers defaults < options file < environment < flags.
// It returns the merged options and the options file that was read, if any.
func loadOptions(cmd *cobra.Command) (*config.Options, string, error) {
	vars, err := env.LoadAndExportDotEnv(envFileFlag)
	if err != nil {
		return nil, "", withExitCode(ExitConfigError, err)
	}
	if len(vars) > 0 {
		log.WithField("count", len(vars)).Debug("loaded .env variables")
	}

	fileOpts, path, err := config.LoadOptions(configFlag)
	if err != nil {
		return nil, path, withExitCode(ExitConfigError, err)
	}
	if path != "" {
		log.WithField("path", path).Debug("loaded options file")
	} else {
		log.Debug("no options file found")
	}

	envOpts, err := env.FromEnvironment()
	if err != nil {
		return nil, path, withExitCode(ExitConfigError, err)
	}

	flagOpts, err := optionsFromFlags(cmd)
	if err != nil {
		return nil, path, err
	}

	opts := fileOpts.Merge(envOpts).Merge(flagOpts)
	if cmd.Flags().Changed("ci") {
		opts.IsCI = ciFlag
	}

	log.WithFields(logrus.Fields{
		"ci":       opts.IsCI,
		"defaults": opts.IsDefault(),
	}).Debug("options resolved")

	return opts, path, nil
}

// buildConfig loads the layered options, builds the configuration and checks
// it against the JSON schema.
func buildConfig(cmd *cobra.Command) (*playwright.Config, *config.Options, string, error) {
	opts, path, err := loadOptions(cmd)
	if err != nil {
		return nil, nil, path, err
	}

	cfg, err := builder.Build(opts)
	if err != nil {
		return nil, nil, path, withExitCode(ExitConfigError, err)
	}

	if err := schema.Validate(cfg); err != nil {
		return nil, nil, path, withExitCode(ExitConfigError, err)
	}

	log.WithFields(logrus.Fields{
		"baseURL": cfg.Use.BaseURL,
		"workers": cfg.Workers,
		"retries": cfg.Retries,
	}).Debug("configuration built")

	return cfg, opts, path, nil
}
