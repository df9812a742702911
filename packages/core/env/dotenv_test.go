package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:    "simple key-value",
			content: "PWCONFIG_TEST_DIR=./e2e",
			expected: map[string]string{
				"PWCONFIG_TEST_DIR": "./e2e",
			},
		},
		{
			name:    "multiple keys",
			content: "CI=true\nPWCONFIG_RETRIES=3,1\nPWCONFIG_VIEWPORT=800x600",
			expected: map[string]string{
				"CI":                "true",
				"PWCONFIG_RETRIES":  "3,1",
				"PWCONFIG_VIEWPORT": "800x600",
			},
		},
		{
			name:    "double quoted value",
			content: `PWCONFIG_WEB_SERVER_COMMAND="npm run dev -- --port 4000"`,
			expected: map[string]string{
				"PWCONFIG_WEB_SERVER_COMMAND": "npm run dev -- --port 4000",
			},
		},
		{
			name:    "comments are skipped",
			content: "# local overrides\nPWCONFIG_TEST_ID_ATTRIBUTE=data-qa",
			expected: map[string]string{
				"PWCONFIG_TEST_ID_ATTRIBUTE": "data-qa",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".env")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write env file: %v", err)
			}

			got, err := LoadDotEnv(path)
			if err != nil {
				t.Fatalf("LoadDotEnv() error = %v", err)
			}

			if len(got) != len(tt.expected) {
				t.Errorf("LoadDotEnv() returned %d vars, want %d", len(got), len(tt.expected))
			}
			for k, v := range tt.expected {
				if got[k] != v {
					t.Errorf("LoadDotEnv()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestLoadDotEnvFileNotFound(t *testing.T) {
	_, err := LoadDotEnv("/nonexistent/path/.env")
	if err == nil {
		t.Error("LoadDotEnv() expected error for non-existent file")
	}
}

func TestLoadAndExportDotEnvKeepsExisting(t *testing.T) {
	t.Setenv("PWCONFIG_TEST_DIR", "from-shell")
	// Registered so t.Setenv restores/unsets it after the test.
	t.Setenv("PWCONFIG_TEST_ID_ATTRIBUTE", "")
	os.Unsetenv("PWCONFIG_TEST_ID_ATTRIBUTE")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PWCONFIG_TEST_DIR=from-file\nPWCONFIG_TEST_ID_ATTRIBUTE=data-qa\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	if _, err := LoadAndExportDotEnv(path); err != nil {
		t.Fatalf("LoadAndExportDotEnv() error = %v", err)
	}

	if got := os.Getenv("PWCONFIG_TEST_DIR"); got != "from-shell" {
		t.Errorf("PWCONFIG_TEST_DIR = %q, want existing value kept", got)
	}
	if got := os.Getenv("PWCONFIG_TEST_ID_ATTRIBUTE"); got != "data-qa" {
		t.Errorf("PWCONFIG_TEST_ID_ATTRIBUTE = %q, want %q", got, "data-qa")
	}
}

func TestLoadAndExportDotEnvMissingDefault(t *testing.T) {
	chdir(t, t.TempDir())

	vars, err := LoadAndExportDotEnv("")
	if err != nil {
		t.Fatalf("LoadAndExportDotEnv(\"\") error = %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("expected no vars, got %v", vars)
	}
}

func TestLoadAndExportDotEnvMissingExplicit(t *testing.T) {
	_, err := LoadAndExportDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Error("expected error for missing explicit env file")
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
