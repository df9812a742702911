package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Retries int    `json:"retries"`
	Workers int    `json:"workers"`
	Command string `json:"command"`
}

func TestManager_Compare_NewSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e2e", "playwright.config.json")

	manager := NewManager(path, true) // Update mode enabled

	result := manager.Compare(sample{Retries: 2, Workers: 1, Command: "pnpm start"})

	if !result.Passed {
		t.Errorf("expected passed to be true, got false: %s", result.Message)
	}
	if !result.IsNew {
		t.Error("expected IsNew to be true")
	}

	// Verify snapshot file was created, including the parent directory
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected snapshot file to be created: %v", err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("expected trailing newline, got %q", string(data))
	}
}

func TestManager_Compare_Missing_NoUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")

	result := NewManager(path, false).Compare(sample{})

	if result.Passed {
		t.Error("expected failure for missing snapshot")
	}
	if !strings.Contains(result.Message, "--update") {
		t.Errorf("expected hint about --update, got %q", result.Message)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("snapshot must not be created outside update mode")
	}
}

func TestManager_Compare_ExistingSnapshot_Match(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")

	data := sample{Retries: 2, Workers: 1, Command: "pnpm build && pnpm start"}
	if r := NewManager(path, true).Compare(data); !r.Passed || !r.IsNew {
		t.Fatal("failed to create initial snapshot")
	}

	// Compare with same data
	result := NewManager(path, false).Compare(data)

	if !result.Passed {
		t.Errorf("expected match, got: %s", result.Message)
	}
}

func TestManager_Compare_ExistingSnapshot_Mismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")

	if r := NewManager(path, true).Compare(sample{Retries: 2, Workers: 1}); !r.Passed {
		t.Fatal("failed to create initial snapshot")
	}

	result := NewManager(path, false).Compare(sample{Retries: 0, Workers: 1})

	if result.Passed {
		t.Error("expected mismatch, got passed")
	}
	if len(result.Changed) != 1 || result.Changed[0] != "retries" {
		t.Errorf("expected [retries] to change, got %v", result.Changed)
	}
	if !strings.Contains(result.Message, "retries") {
		t.Errorf("expected message to name the key, got %q", result.Message)
	}
}

func TestManager_Compare_ExistingSnapshot_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")

	NewManager(path, true).Compare(sample{Workers: 1})

	result := NewManager(path, true).Compare(sample{Workers: 8})
	if !result.Passed || !result.WasUpdated {
		t.Errorf("expected update, got %+v", result)
	}

	if r := NewManager(path, false).Compare(sample{Workers: 8}); !r.Passed {
		t.Errorf("expected updated snapshot to match, got %s", r.Message)
	}
}

func TestManager_Compare_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	result := NewManager(path, true).Compare(sample{})
	if result.Passed {
		t.Error("expected failure for unparsable snapshot")
	}
	if result.Err == nil {
		t.Error("expected Err to be set for unparsable snapshot")
	}
}

func TestManager_Compare_MismatchHasNoErr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playwright.config.json")
	NewManager(path, true).Compare(sample{Retries: 1})

	result := NewManager(path, false).Compare(sample{Retries: 2})
	if result.Passed {
		t.Fatal("expected mismatch")
	}
	if result.Err != nil {
		t.Errorf("mismatch must not set Err, got %v", result.Err)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	data, err := Marshal(sample{Command: "a && b"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a && b"`) {
		t.Errorf("unexpected escaping: %s", data)
	}
}
