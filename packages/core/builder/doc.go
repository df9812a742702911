// Package builder assembles the base Playwright configuration.
//
// Build resolves the options against the defaults table, derives the web
// server origin and the trailing-slash base URL from one input URL, and
// returns a fresh playwright.Config with the chromium, firefox and webkit
// projects. It performs no I/O beyond reading the logical CPU count when
// the worker counts are defaulted, and is safe for concurrent use.
package builder
