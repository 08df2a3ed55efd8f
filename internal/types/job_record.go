// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// JobRecord represents a structured job posting as produced by ingestion.
// Records are read-only once handed to the matching engine.
type JobRecord struct {
	ID      int      `json:"id" validate:"gte=0"`
	Title   string   `json:"title" validate:"required"`
	Company string   `json:"company"`
	Skills  []string `json:"skills"`
	Text    string   `json:"text"`
}

// Validate validates the JobRecord using the validator.
// An empty skill list and empty text are allowed; such a job scores zero
// rather than failing validation.
func (j *JobRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
