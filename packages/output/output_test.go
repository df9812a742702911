package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wpazderski/pwconfig/packages/core/builder"
	"github.com/wpazderski/pwconfig/packages/core/config"
	"github.com/wpazderski/pwconfig/packages/playwright"
)

func testConfig(t *testing.T) *playwright.Config {
	t.Helper()
	cfg, err := builder.Build(&config.Options{
		IsCI:             true,
		WebServerURL:     config.StringPtr("http://localhost:3000/app"),
		WebServerCommand: config.StringPtr("pnpm build && pnpm start"),
		Viewport:         &playwright.Viewport{Width: 800, Height: 600},
	})
	require.NoError(t, err)
	return cfg
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "json", expected: FormatJSON},
		{input: "YAML", expected: FormatYAML},
		{input: "yml", expected: FormatYAML},
		{input: "ts", expected: FormatTS},
		{input: "typescript", expected: FormatTS},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseFormatErrorListsFormats(t *testing.T) {
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, yaml, ts")
	assert.Equal(t, "json, yaml, ts", FormatNames())
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("playwright.config.json"))
	assert.Equal(t, FormatYAML, FormatForPath("out/config.YML"))
	assert.Equal(t, FormatTS, FormatForPath("playwright.config.ts"))
	assert.Equal(t, FormatJSON, FormatForPath("config"))
}

func TestEncodeJSON(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatJSON))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"command": "pnpm build && pnpm start"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "http://localhost:3000/app/", decoded["use"].(map[string]any)["baseURL"])
}

func TestEncodeYAML(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, true, decoded["forbidOnly"])
	assert.Equal(t, []any{[]any{"list"}, []any{"html", map[string]any{"open": "never"}}}, decoded["reporter"])
	assert.Equal(t, "http://localhost:3000", decoded["webServer"].(map[string]any)["url"])
}

func TestEncodeTS(t *testing.T) {
	cfg := testConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatTS))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "// Generated by pwconfig."))
	assert.Contains(t, out, `import { defineConfig } from "@playwright/test";`)
	assert.True(t, strings.HasSuffix(out, "});\n"))

	start := strings.Index(out, "defineConfig({")
	require.GreaterOrEqual(t, start, 0)
	body := strings.TrimSuffix(out[start+len("defineConfig("):], ");\n")
	assert.True(t, json.Valid([]byte(body)), "embedded object must be valid JSON")
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, testConfig(t), Format("xml")))
}

func TestQuery(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		path     string
		expected string
	}{
		{path: "use.baseURL", expected: "http://localhost:3000/app/"},
		{path: "webServer.url", expected: "http://localhost:3000"},
		{path: "retries", expected: "2"},
		{path: "forbidOnly", expected: "true"},
		{path: "projects.#.name", expected: `["chromium","firefox","webkit"]`},
		{path: "use.viewport.width", expected: "800"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Query(cfg, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestQueryMissingPath(t *testing.T) {
	_, err := Query(testConfig(t), "use.headless")
	assert.Error(t, err)
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatConfig(testConfig(t), true)

	out := buf.String()
	assert.Contains(t, out, "Playwright configuration (ci)")
	assert.Contains(t, out, "Base URL:        http://localhost:3000/app/")
	assert.Contains(t, out, "Viewport:        800x600")
	assert.Contains(t, out, "Reuse existing:  no")
	for _, name := range []string{"chromium", "firefox", "webkit"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "\x1b[", "no escape codes expected")
}

func TestConsoleFormatterError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatError(errors.New("boom"))
	f.FormatSuccess("done")
	f.FormatHeader("1.0.0")

	assert.Equal(t, "Error: boom\n✓ done\npwconfig 1.0.0\n", buf.String())
}
