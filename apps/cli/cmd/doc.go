// Package cmd implements the pwconfig CLI commands using Cobra.
//
// Available commands:
//   - generate: Build the Playwright configuration and print or write it
//   - check: Compare a committed configuration with a freshly generated one
//   - validate: Check options files without generating anything
//   - init: Create a starter .pwconfig.yaml
//   - devices: List the device presets behind the browser projects
//   - schema: Print the JSON Schema generated configurations must satisfy
//   - version: Show pwconfig version information
//
// Options are layered from an options file, PWCONFIG_* environment
// variables (optionally loaded from a .env file) and flags. generate can
// watch the options file and regenerate on every change.
package cmd
