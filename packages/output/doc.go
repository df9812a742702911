// Package output provides encoders and formatters for generated configurations.
//
// Supported output formats:
//   - JSON: indented, consumable with `import config from "./playwright.config.json"`
//   - YAML: same keys, for tools that prefer YAML
//   - TS: a playwright.config.ts module wrapping the JSON in defineConfig
//
// ConsoleFormatter prints a colored summary for humans and Query extracts
// single values with gjson paths.
package output
