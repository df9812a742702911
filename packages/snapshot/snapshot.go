// Package snapshot detects drift between a generated configuration and the
// copy committed to a repository.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// Manager compares values against one stored JSON snapshot file.
type Manager struct {
	path       string
	updateMode bool
}

// NewManager creates a new snapshot manager for the file at path.
func NewManager(path string, updateMode bool) *Manager {
	return &Manager{
		path:       path,
		updateMode: updateMode,
	}
}

// Path returns the snapshot file path.
func (m *Manager) Path() string {
	return m.path
}

// Result represents the result of a snapshot comparison.
type Result struct {
	Passed     bool
	Message    string
	Expected   any
	Actual     any
	Changed    []string // top-level keys that differ
	IsNew      bool
	WasUpdated bool
	// Err is set when the snapshot could not be read, decoded or written.
	// A failed comparison leaves it nil.
	Err        error
}

// Compare compares actual against the stored snapshot.
// If updateMode is true and the snapshot is missing or different, it is rewritten.
func (m *Manager) Compare(actual any) *Result {
	result := &Result{
		Actual: actual,
	}

	expected, exists, err := m.load()
	if err != nil {
		result.Err = fmt.Errorf("failed to load snapshot: %w", err)
		result.Message = result.Err.Error()
		return result
	}

	if !exists {
		if m.updateMode {
			if err := m.save(actual); err != nil {
				result.Err = fmt.Errorf("failed to save snapshot: %w", err)
				result.Message = result.Err.Error()
				return result
			}
			result.Passed = true
			result.IsNew = true
			result.Expected = actual
			result.Message = "snapshot created"
			return result
		}

		result.Message = fmt.Sprintf("%s does not exist (run with --update to create it)", m.path)
		return result
	}

	result.Expected = expected

	normalized, err := normalize(actual)
	if err != nil {
		result.Err = fmt.Errorf("failed to encode value: %w", err)
		result.Message = result.Err.Error()
		return result
	}

	result.Changed = changedKeys(expected, normalized)
	if len(result.Changed) == 0 && reflect.DeepEqual(expected, normalized) {
		result.Passed = true
		return result
	}

	if m.updateMode {
		if err := m.save(actual); err != nil {
			result.Err = fmt.Errorf("failed to update snapshot: %w", err)
			result.Message = result.Err.Error()
			return result
		}
		result.Passed = true
		result.WasUpdated = true
		result.Message = "snapshot updated"
		return result
	}

	result.Message = "snapshot mismatch"
	if len(result.Changed) > 0 {
		result.Message += ": " + strings.Join(result.Changed, ", ")
	}
	return result
}

func (m *Manager) load() (any, bool, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, true, fmt.Errorf("parsing %s: %w", m.path, err)
	}
	return v, true, nil
}

func (m *Manager) save(v any) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}

	data, err := Marshal(v)
	if err != nil {
		return err
	}

	return os.WriteFile(m.path, data, 0644)
}

// Marshal encodes v the way snapshot files are written: two-space indent,
// no HTML escaping, trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize round-trips v through JSON so that it compares equal to a
// decoded snapshot.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func changedKeys(expected, actual any) []string {
	e, eok := expected.(map[string]any)
	a, aok := actual.(map[string]any)
	if !eok || !aok {
		return nil
	}

	keys := make(map[string]struct{})
	for k := range e {
		keys[k] = struct{}{}
	}
	for k := range a {
		keys[k] = struct{}{}
	}

	var changed []string
	for k := range keys {
		if !reflect.DeepEqual(e[k], a[k]) {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}
