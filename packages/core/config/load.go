package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OptionsFilenames contains the possible options file names, in lookup order
var OptionsFilenames = []string{
	".pwconfig.yaml",
	".pwconfig.yml",
	"pwconfig.yaml",
	"pwconfig.json",
}

// LoadOptions loads options from the specified path or searches the current directory
func LoadOptions(path string) (*Options, string, error) {
	if path != "" {
		opts, err := loadOptionsFromFile(path)
		return opts, path, err
	}

	return FindAndLoadOptions(".")
}

// FindAndLoadOptions searches for an options file in the given directory.
// It returns the path that was loaded, or "" when no file exists.
func FindAndLoadOptions(dir string) (*Options, string, error) {
	for _, filename := range OptionsFilenames {
		optionsPath := filepath.Join(dir, filename)
		if _, err := os.Stat(optionsPath); err == nil {
			opts, err := loadOptionsFromFile(optionsPath)
			return opts, optionsPath, err
		}
	}

	return &Options{}, "", nil
}

func loadOptionsFromFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}

	opts, err := ParseOptions(data)
	if err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML (or JSON) options. ${VAR} references are expanded
// from the environment first. Unknown keys are rejected.
func ParseOptions(data []byte) (*Options, error) {
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	opts := &Options{}
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return opts, nil
}

// Save writes the options to a file as YAML
func (o *Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// StarterOptions returns the options written by `pwconfig init`: every
// static default spelled out. Workers stay unset so the local worker count
// keeps following the CPU count of whichever machine runs the tests.
func StarterOptions() *Options {
	retries := DefaultRetries()
	viewport := DefaultViewport()
	return &Options{
		TestDir:          StringPtr(DefaultTestDir),
		FullyParallel:    BoolPtr(DefaultFullyParallel),
		Retries:          &retries,
		TestIDAttribute:  StringPtr(DefaultTestIDAttribute),
		WebServerURL:     StringPtr(DefaultWebServerURL),
		WebServerCommand: StringPtr(DefaultWebServerCommand),
		Viewport:         &viewport,
	}
}
