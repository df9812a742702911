package env

import (
	"fmt"
	"strconv"
	"strings"

	envparse "github.com/caarlos0/env/v11"

	"github.com/wpazderski/pwconfig/packages/core/config"
)

// Environment variables read by FromEnvironment.
const (
	VarCI               = "CI"
	VarTestDir          = "PWCONFIG_TEST_DIR"
	VarFullyParallel    = "PWCONFIG_FULLY_PARALLEL"
	VarRetries          = "PWCONFIG_RETRIES"
	VarWorkers          = "PWCONFIG_WORKERS"
	VarTestIDAttribute  = "PWCONFIG_TEST_ID_ATTRIBUTE"
	VarWebServerURL     = "PWCONFIG_WEB_SERVER_URL"
	VarWebServerCommand = "PWCONFIG_WEB_SERVER_COMMAND"
	VarViewport         = "PWCONFIG_VIEWPORT"
)

type environment struct {
	CI               string  `env:"CI"`
	TestDir          *string `env:"PWCONFIG_TEST_DIR"`
	FullyParallel    string  `env:"PWCONFIG_FULLY_PARALLEL"`
	Retries          string  `env:"PWCONFIG_RETRIES"`
	Workers          string  `env:"PWCONFIG_WORKERS"`
	TestIDAttribute  *string `env:"PWCONFIG_TEST_ID_ATTRIBUTE"`
	WebServerURL     *string `env:"PWCONFIG_WEB_SERVER_URL"`
	WebServerCommand *string `env:"PWCONFIG_WEB_SERVER_COMMAND"`
	Viewport         string  `env:"PWCONFIG_VIEWPORT"`
}

// IsCI reports whether a CI variable value means "running on CI".
// CI providers set anything from "true" to "1" to their own name.
func IsCI(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// FromEnvironment reads option overrides from the process environment.
// Unset variables leave the corresponding option nil.
func FromEnvironment() (*config.Options, error) {
	var e environment
	if err := envparse.Parse(&e); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	opts := &config.Options{
		IsCI:             IsCI(e.CI),
		TestDir:          e.TestDir,
		TestIDAttribute:  e.TestIDAttribute,
		WebServerURL:     e.WebServerURL,
		WebServerCommand: e.WebServerCommand,
	}

	if e.FullyParallel != "" {
		b, err := strconv.ParseBool(e.FullyParallel)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", VarFullyParallel, e.FullyParallel)
		}
		opts.FullyParallel = &b
	}
	if e.Retries != "" {
		p, err := config.ParsePerEnv(e.Retries)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarRetries, err)
		}
		opts.Retries = &p
	}
	if e.Workers != "" {
		p, err := config.ParsePerEnv(e.Workers)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarWorkers, err)
		}
		opts.Workers = &p
	}
	if e.Viewport != "" {
		v, err := config.ParseViewport(e.Viewport)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarViewport, err)
		}
		opts.Viewport = &v
	}

	return opts, nil
}
