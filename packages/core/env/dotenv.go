package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is loaded silently when no explicit file is given.
const DefaultDotEnvFile = ".env"

// LoadDotEnv parses a .env file and returns its key-value pairs without
// touching the process environment.
func LoadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// LoadAndExportDotEnv parses a .env file and exports its variables so that
// FromEnvironment and ${VAR} references in options files can see them.
// Variables already set in the OS environment are left alone.
//
// An empty path loads DefaultDotEnvFile if it exists.
func LoadAndExportDotEnv(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultDotEnvFile
	}

	vars, err := LoadDotEnv(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	for k, v := range vars {
		if _, set := os.LookupEnv(k); !set {
			_ = os.Setenv(k, v) // Error ignored: only fails for invalid key names
		}
	}

	return vars, nil
}
