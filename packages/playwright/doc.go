// Package playwright describes the configuration schema consumed by the
// Playwright test runner.
//
// It provides:
//   - Config and its sections (reporters, shared use options, projects, web server)
//   - Desktop device presets for the chromium, firefox and webkit engines
//   - Tuple encoding for reporter entries in JSON and YAML
package playwright
