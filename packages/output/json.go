package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

// Format is an output encoding for a generated configuration.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTS   Format = "ts"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTS}

// ParseFormat parses a format name. "yml" is accepted as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "ts", "typescript":
		return FormatTS, nil
	}
	return "", fmt.Errorf("unknown output format %q (supported: %s)", s, FormatNames())
}

// FormatNames returns the supported format names, comma separated.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// FormatForPath guesses the format from a file extension, falling back to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".ts", ".mts":
		return FormatTS
	}
	return FormatJSON
}

const tsHeader = `// Generated by pwconfig. Do not edit.
import { defineConfig } from "@playwright/test";

export default defineConfig(`

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *playwright.Config, format Format) error {
	switch format {
	case FormatJSON:
		data, err := MarshalJSON(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTS:
		data, err := MarshalJSON(cfg)
		if err != nil {
			return err
		}
		body := strings.TrimRight(string(data), "\n")
		_, err = fmt.Fprintf(w, "%s%s);\n", tsHeader, body)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// MarshalJSON returns the indented JSON encoding of cfg, newline terminated.
// HTML characters are not escaped so shell commands stay readable.
func MarshalJSON(cfg *playwright.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}
