// Package schemas validates incoming resume payloads against the JSON
// Schemas embedded in this package.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ValidationError reports one or more schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Details flattens the violations into human-readable strings for API
// error responses.
func (ve *ValidationError) Details() []string {
	details := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		details = append(details, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return details
}

var (
	resumeSchemaOnce sync.Once
	resumeSchema     *gojsonschema.Schema
	resumeSchemaErr  error
)

func loadResumeSchema() (*gojsonschema.Schema, error) {
	resumeSchemaOnce.Do(func() {
		data, err := schemaFiles.ReadFile("resume.schema.json")
		if err != nil {
			resumeSchemaErr = fmt.Errorf("failed to read embedded schema: %w", err)
			return
		}
		resumeSchema, resumeSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if resumeSchemaErr != nil {
			resumeSchemaErr = fmt.Errorf("failed to compile resume schema: %w", resumeSchemaErr)
		}
	})
	return resumeSchema, resumeSchemaErr
}

// ValidateResume checks a raw resume payload against the resume schema.
// The schema is permissive about which sections are present; it rejects
// wrong shapes, like a string where an array of entries is expected.
// Returns a *ValidationError on violations.
func ValidateResume(payload []byte) error {
	schema, err := loadResumeSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: fmt.Sprintf("invalid JSON document: %v", err),
		}}}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
