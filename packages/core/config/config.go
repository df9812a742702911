package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

// Options represents the user-supplied options for the base configuration.
// Every field except IsCI is optional; nil means "use the default".
type Options struct {
	// IsCI selects the CI branch: focused tests are forbidden, the CI retry
	// and worker counts are used and an already running server is never reused.
	IsCI             bool                 `json:"isCi" yaml:"isCi"`
	TestDir          *string              `json:"testDir,omitempty" yaml:"testDir,omitempty"`
	FullyParallel    *bool                `json:"fullyParallel,omitempty" yaml:"fullyParallel,omitempty"`
	Retries          *PerEnv              `json:"retries,omitempty" yaml:"retries,omitempty"`
	Workers          *PerEnv              `json:"workers,omitempty" yaml:"workers,omitempty"`
	TestIDAttribute  *string              `json:"testIdAttribute,omitempty" yaml:"testIdAttribute,omitempty"`
	WebServerURL     *string              `json:"webServerUrl,omitempty" yaml:"webServerUrl,omitempty"` // origin becomes webServer.url, full URL becomes use.baseURL
	WebServerCommand *string              `json:"webServerCommand,omitempty" yaml:"webServerCommand,omitempty"`
	Viewport         *playwright.Viewport `json:"viewport,omitempty" yaml:"viewport,omitempty"`
}

// PerEnv holds one value for CI runs and one for local runs.
type PerEnv struct {
	CI    int `json:"ci" yaml:"ci"`
	NonCI int `json:"nonCi" yaml:"nonCi"`
}

// Pick returns the value for the given environment.
func (p PerEnv) Pick(isCI bool) int {
	if isCI {
		return p.CI
	}
	return p.NonCI
}

// String returns the "ci,nonCi" form accepted by ParsePerEnv.
func (p PerEnv) String() string {
	return fmt.Sprintf("%d,%d", p.CI, p.NonCI)
}

// ParsePerEnv parses "ci,nonCi", e.g. "2,0".
func ParsePerEnv(s string) (PerEnv, error) {
	ci, nonCI, found := strings.Cut(s, ",")
	if !found {
		return PerEnv{}, fmt.Errorf("invalid value %q: expected <ci>,<nonCi>", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(ci))
	if err != nil {
		return PerEnv{}, fmt.Errorf("invalid ci value in %q: %w", s, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(nonCI))
	if err != nil {
		return PerEnv{}, fmt.Errorf("invalid nonCi value in %q: %w", s, err)
	}
	return PerEnv{CI: c, NonCI: n}, nil
}

// ParseViewport parses "WIDTHxHEIGHT", e.g. "1920x1080".
func ParseViewport(s string) (playwright.Viewport, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return playwright.Viewport{}, fmt.Errorf("invalid viewport %q: expected <width>x<height>", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return playwright.Viewport{}, fmt.Errorf("invalid viewport width in %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return playwright.Viewport{}, fmt.Errorf("invalid viewport height in %q", s)
	}
	return playwright.Viewport{Width: width, Height: height}, nil
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Merge merges another set of options into this one, with other taking precedence.
// Optional fields are only overridden when explicitly set in other. CI mode
// is switched on when either side has it on.
func (o *Options) Merge(other *Options) *Options {
	if other == nil {
		result := *o
		return &result
	}

	result := *o // Copy

	result.IsCI = o.IsCI || other.IsCI

	if other.TestDir != nil {
		result.TestDir = other.TestDir
	}
	if other.FullyParallel != nil {
		result.FullyParallel = other.FullyParallel
	}
	if other.Retries != nil {
		result.Retries = other.Retries
	}
	if other.Workers != nil {
		result.Workers = other.Workers
	}
	if other.TestIDAttribute != nil {
		result.TestIDAttribute = other.TestIDAttribute
	}
	if other.WebServerURL != nil {
		result.WebServerURL = other.WebServerURL
	}
	if other.WebServerCommand != nil {
		result.WebServerCommand = other.WebServerCommand
	}
	if other.Viewport != nil {
		result.Viewport = other.Viewport
	}

	return &result
}
