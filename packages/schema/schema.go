// Package schema checks generated configurations against the JSON Schema of
// the Playwright configuration subset pwconfig emits.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/wpazderski/pwconfig/packages/playwright"
)

//go:embed config.schema.json
var configSchema []byte

// Schema returns the raw JSON Schema document.
func Schema() []byte {
	return configSchema
}

// FieldError is a single schema violation.
type FieldError struct {
	Field       string
	Description string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidationErrors represents a collection of schema violations
type ValidationErrors []FieldError

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Error())
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Validate checks cfg against the embedded schema. A violation is reported
// as ValidationErrors; other errors mean the check could not run.
func Validate(cfg *playwright.Config) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return ValidateJSON(doc)
}

// ValidateJSON checks an encoded configuration against the embedded schema.
func ValidateJSON(doc []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var errs ValidationErrors
	for _, desc := range result.Errors() {
		errs = append(errs, FieldError{Field: desc.Field(), Description: desc.Description()})
	}
	return errs
}
