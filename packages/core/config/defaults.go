package config

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

const (
	DefaultTestDir          = "./"
	DefaultFullyParallel    = true
	DefaultRetriesCI        = 2
	DefaultRetriesNonCI     = 0
	DefaultWorkersCI        = 1
	DefaultTestIDAttribute  = "data-test-id"
	DefaultWebServerURL     = "http://localhost:3000"
	DefaultWebServerCommand = "pnpm run start-test-server"
	DefaultViewportWidth    = 1920
	DefaultViewportHeight   = 1080
)

// Settings is the fully populated form of every optional field in Options.
type Settings struct {
	TestDir          string              `json:"testDir" yaml:"testDir"`
	FullyParallel    bool                `json:"fullyParallel" yaml:"fullyParallel"`
	Retries          PerEnv              `json:"retries" yaml:"retries"`
	Workers          PerEnv              `json:"workers" yaml:"workers"`
	TestIDAttribute  string              `json:"testIdAttribute" yaml:"testIdAttribute"`
	WebServerURL     string              `json:"webServerUrl" yaml:"webServerUrl"`
	WebServerCommand string              `json:"webServerCommand" yaml:"webServerCommand"`
	Viewport         playwright.Viewport `json:"viewport" yaml:"viewport"`
}

// Resolved is Options after default substitution.
type Resolved struct {
	IsCI bool
	Settings
}

// cpuCounter is swapped out in tests.
var cpuCounter = func() (int, error) {
	return cpu.Counts(true)
}

// LogicalCPUs returns the number of logical CPUs on the host.
func LogicalCPUs() int {
	n, err := cpuCounter()
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// DefaultRetries returns the default retry counts.
func DefaultRetries() PerEnv {
	return PerEnv{CI: DefaultRetriesCI, NonCI: DefaultRetriesNonCI}
}

// DefaultWorkers returns the default worker counts: one worker on CI, one
// per logical CPU locally.
func DefaultWorkers() PerEnv {
	return PerEnv{CI: DefaultWorkersCI, NonCI: LogicalCPUs()}
}

// DefaultViewport returns the default viewport size.
func DefaultViewport() playwright.Viewport {
	return playwright.Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
}

// DefaultSettings returns the defaults table.
func DefaultSettings() Settings {
	return Settings{
		TestDir:          DefaultTestDir,
		FullyParallel:    DefaultFullyParallel,
		Retries:          DefaultRetries(),
		Workers:          DefaultWorkers(),
		TestIDAttribute:  DefaultTestIDAttribute,
		WebServerURL:     DefaultWebServerURL,
		WebServerCommand: DefaultWebServerCommand,
		Viewport:         DefaultViewport(),
	}
}

// Resolve fills every unset field of o from the defaults table.
// Composite fields (retries, workers, viewport) are taken as a whole, never
// merged member by member. The CPU count is only read when workers is unset.
func Resolve(o *Options) Resolved {
	if o == nil {
		o = &Options{}
	}

	r := Resolved{IsCI: o.IsCI}

	r.TestDir = DefaultTestDir
	if o.TestDir != nil {
		r.TestDir = *o.TestDir
	}
	r.FullyParallel = DefaultFullyParallel
	if o.FullyParallel != nil {
		r.FullyParallel = *o.FullyParallel
	}
	if o.Retries != nil {
		r.Retries = *o.Retries
	} else {
		r.Retries = DefaultRetries()
	}
	if o.Workers != nil {
		r.Workers = *o.Workers
	} else {
		r.Workers = DefaultWorkers()
	}
	r.TestIDAttribute = DefaultTestIDAttribute
	if o.TestIDAttribute != nil {
		r.TestIDAttribute = *o.TestIDAttribute
	}
	r.WebServerURL = DefaultWebServerURL
	if o.WebServerURL != nil {
		r.WebServerURL = *o.WebServerURL
	}
	r.WebServerCommand = DefaultWebServerCommand
	if o.WebServerCommand != nil {
		r.WebServerCommand = *o.WebServerCommand
	}
	if o.Viewport != nil {
		r.Viewport = *o.Viewport
	} else {
		r.Viewport = DefaultViewport()
	}

	return r
}

// IsDefault returns true if no optional field is set.
func (o *Options) IsDefault() bool {
	return o.TestDir == nil &&
		o.FullyParallel == nil &&
		o.Retries == nil &&
		o.Workers == nil &&
		o.TestIDAttribute == nil &&
		o.WebServerURL == nil &&
		o.WebServerCommand == nil &&
		o.Viewport == nil
}
