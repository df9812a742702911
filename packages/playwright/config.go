package playwright

import (
	"encoding/json"
	"fmt"
)

// Config is the subset of PlaywrightTestConfig emitted by pwconfig.
// Field order matches the order keys are written in.
type Config struct {
	TestDir       string     `json:"testDir" yaml:"testDir"`
	FullyParallel bool       `json:"fullyParallel" yaml:"fullyParallel"`
	ForbidOnly    bool       `json:"forbidOnly" yaml:"forbidOnly"`
	Retries       int        `json:"retries" yaml:"retries"`
	Workers       int        `json:"workers" yaml:"workers"`
	Reporter      []Reporter `json:"reporter" yaml:"reporter"`
	Use           Use        `json:"use" yaml:"use"`
	Projects      []Project  `json:"projects" yaml:"projects"`
	WebServer     WebServer  `json:"webServer" yaml:"webServer"`
}

// Viewport is a browser viewport size in CSS pixels.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// String formats v as WIDTHxHEIGHT.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// TraceMode controls when Playwright records traces.
type TraceMode string

const (
	TraceOff             TraceMode = "off"
	TraceOn              TraceMode = "on"
	TraceRetainOnFailure TraceMode = "retain-on-failure"
	TraceOnFirstRetry    TraceMode = "on-first-retry"
)

// Use holds the shared options applied to every test.
type Use struct {
	BaseURL         string    `json:"baseURL" yaml:"baseURL"`
	Trace           TraceMode `json:"trace" yaml:"trace"`
	TestIDAttribute string    `json:"testIdAttribute" yaml:"testIdAttribute"`
	Viewport        Viewport  `json:"viewport" yaml:"viewport"`
}

// Project is a named browser configuration.
type Project struct {
	Name string `json:"name" yaml:"name"`
	Use  Device `json:"use" yaml:"use"`
}

// WebServer tells the runner how to start the system under test and
// which URL to poll before running tests.
type WebServer struct {
	Command             string `json:"command" yaml:"command"`
	URL                 string `json:"url" yaml:"url"`
	ReuseExistingServer bool   `json:"reuseExistingServer" yaml:"reuseExistingServer"`
}

// Built-in reporter names.
const (
	ReporterList = "list"
	ReporterHTML = "html"
)

// HTMLOpen controls when the HTML report is opened in a browser.
type HTMLOpen string

const (
	HTMLOpenAlways    HTMLOpen = "always"
	HTMLOpenNever     HTMLOpen = "never"
	HTMLOpenOnFailure HTMLOpen = "on-failure"
)

// HTMLOptions configures the html reporter.
type HTMLOptions struct {
	Open HTMLOpen `json:"open" yaml:"open"`
}

// Reporter is a single reporter entry. It is written as a tuple:
// ["name"] when Options is nil, ["name", options] otherwise.
type Reporter struct {
	Name    string
	Options any
}

func (r Reporter) tuple() []any {
	if r.Options == nil {
		return []any{r.Name}
	}
	return []any{r.Name, r.Options}
}

// MarshalJSON implements json.Marshaler.
func (r Reporter) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.tuple())
}

// MarshalYAML implements yaml.Marshaler.
func (r Reporter) MarshalYAML() (any, error) {
	return r.tuple(), nil
}
