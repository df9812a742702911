package playwright

import (
	"sort"
)

// Device is a browser emulation preset, the Go form of a Playwright
// device descriptor.
type Device struct {
	UserAgent          string   `json:"userAgent" yaml:"userAgent"`
	Screen             Viewport `json:"screen" yaml:"screen"`
	Viewport           Viewport `json:"viewport" yaml:"viewport"`
	DeviceScaleFactor  float64  `json:"deviceScaleFactor" yaml:"deviceScaleFactor"`
	IsMobile           bool     `json:"isMobile" yaml:"isMobile"`
	HasTouch           bool     `json:"hasTouch" yaml:"hasTouch"`
	DefaultBrowserType string   `json:"defaultBrowserType" yaml:"defaultBrowserType"`
}

// Browser engine identifiers, also used as project names.
const (
	Chromium = "chromium"
	Firefox  = "firefox"
	WebKit   = "webkit"
)

// Device preset names.
const (
	DesktopChrome  = "Desktop Chrome"
	DesktopFirefox = "Desktop Firefox"
	DesktopSafari  = "Desktop Safari"
)

// Devices mirrors the desktop entries of Playwright's device registry.
var Devices = map[string]Device{
	DesktopChrome: {
		UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.6723.31 Safari/537.36",
		Screen:             Viewport{Width: 1920, Height: 1080},
		Viewport:           Viewport{Width: 1280, Height: 720},
		DeviceScaleFactor:  1,
		DefaultBrowserType: Chromium,
	},
	DesktopFirefox: {
		UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:131.0) Gecko/20100101 Firefox/131.0",
		Screen:             Viewport{Width: 1920, Height: 1080},
		Viewport:           Viewport{Width: 1280, Height: 720},
		DeviceScaleFactor:  1,
		DefaultBrowserType: Firefox,
	},
	DesktopSafari: {
		UserAgent:          "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.0 Safari/605.1.15",
		Screen:             Viewport{Width: 1792, Height: 1120},
		Viewport:           Viewport{Width: 1280, Height: 720},
		DeviceScaleFactor:  2,
		DefaultBrowserType: WebKit,
	},
}

// LookupDevice returns a copy of the named preset.
func LookupDevice(name string) (Device, bool) {
	d, ok := Devices[name]
	return d, ok
}

// DeviceNames returns the preset names in sorted order.
func DeviceNames() []string {
	names := make([]string, 0, len(Devices))
	for name := range Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithViewport returns a copy of d with its viewport replaced.
func (d Device) WithViewport(v Viewport) Device {
	d.Viewport = v
	return d
}
