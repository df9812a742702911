// Package config handles the options that drive the base Playwright configuration.
//
// It provides functionality for:
//   - The sparse Options record and its fully populated Settings counterpart
//   - The defaults table, including the host's logical CPU count
//   - Field-by-field default resolution and layered merging
//   - Loading options from .pwconfig.yaml or pwconfig.json files
package config
