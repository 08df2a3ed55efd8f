// Package schemas provides JSON Schema validation for the structured job and
// resume documents the CLI accepts. The schemas are embedded so validation
// works regardless of the working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed job_records.schema.json
var jobRecordsSchema string

//go:embed resume_record.schema.json
var resumeRecordSchema string

// ValidationError represents a schema validation error with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
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

// ValidateJobRecords validates raw JSON content against the job records
// schema (an array of structured postings).
func ValidateJobRecords(jsonContent []byte) error {
	return validate(jobRecordsSchema, jsonContent)
}

// ValidateResumeRecord validates raw JSON content against the resume record
// schema.
func ValidateResumeRecord(jsonContent []byte) error {
	return validate(resumeRecordSchema, jsonContent)
}

// validate runs gojsonschema and converts failures into a structured
// *ValidationError.
func validate(schemaContent string, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
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
