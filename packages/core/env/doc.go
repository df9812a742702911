// Package env reads pwconfig options from the process environment.
//
// It provides functionality for:
//   - Loading .env files into the environment without overriding set variables
//   - Mapping CI and PWCONFIG_* variables onto config.Options
//   - Interpreting the CI variable the way common CI providers set it
package env
