package output

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

// Query extracts a value from the JSON form of cfg using a gjson path such as
// "use.baseURL" or "projects.#.name". Strings are returned unquoted, every
// other value as raw JSON.
func Query(cfg *playwright.Config, path string) (string, error) {
	data, err := MarshalJSON(cfg)
	if err != nil {
		return "", err
	}

	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("path %q not found in config", path)
	}
	if result.Type == gjson.String {
		return result.String(), nil
	}
	return result.Raw, nil
}
