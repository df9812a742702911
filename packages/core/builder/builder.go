package builder

import (
	"github.com/wpazderski/pwconfig/packages/core/config"
	"github.com/wpazderski/pwconfig/packages/playwright"
)

// ProjectDevice pairs a generated project with the device preset it uses.
type ProjectDevice struct {
	Name   string
	Device string
}

// browserProjects lists the generated projects in output order.
var browserProjects = []ProjectDevice{
	{Name: playwright.Chromium, Device: playwright.DesktopChrome},
	{Name: playwright.Firefox, Device: playwright.DesktopFirefox},
	{Name: playwright.WebKit, Device: playwright.DesktopSafari},
}

// Projects returns the generated projects in output order.
func Projects() []ProjectDevice {
	return append([]ProjectDevice(nil), browserProjects...)
}

// Build generates the base Playwright configuration from the given options.
// Unset options are taken from the defaults table. The only failure is a web
// server URL that is not absolute; the error wraps ErrInvalidWebServerURL.
func Build(opts *config.Options) (*playwright.Config, error) {
	if opts == nil {
		opts = &config.Options{}
	}

	rawURL := config.DefaultWebServerURL
	if opts.WebServerURL != nil {
		rawURL = *opts.WebServerURL
	}
	webServerURL, err := ParseWebServerURL(rawURL)
	if err != nil {
		return nil, err
	}

	resolved := config.Resolve(opts)
	return assemble(resolved, BaseURL(webServerURL), Origin(webServerURL)), nil
}

func assemble(o config.Resolved, baseURL, origin string) *playwright.Config {
	projects := make([]playwright.Project, 0, len(browserProjects))
	for _, p := range browserProjects {
		device, _ := playwright.LookupDevice(p.Device)
		projects = append(projects, playwright.Project{
			Name: p.Name,
			Use:  device.WithViewport(o.Viewport),
		})
	}

	return &playwright.Config{
		TestDir:       o.TestDir,
		FullyParallel: o.FullyParallel,
		ForbidOnly:    o.IsCI,
		Retries:       o.Retries.Pick(o.IsCI),
		Workers:       o.Workers.Pick(o.IsCI),
		Reporter: []playwright.Reporter{
			{Name: playwright.ReporterList},
			{Name: playwright.ReporterHTML, Options: playwright.HTMLOptions{Open: playwright.HTMLOpenNever}},
		},
		Use: playwright.Use{
			BaseURL:         baseURL,
			Trace:           playwright.TraceOnFirstRetry,
			TestIDAttribute: o.TestIDAttribute,
			Viewport:        o.Viewport,
		},
		Projects: projects,
		WebServer: playwright.WebServer{
			Command:             o.WebServerCommand,
			URL:                 origin,
			ReuseExistingServer: !o.IsCI,
		},
	}
}
