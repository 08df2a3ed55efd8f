// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord represents a structured resume as produced by ingestion.
// Sections maps canonical section names (summary, skills, experience, ...) to
// their raw text. SkillsAll holds every skill found anywhere in the resume;
// SkillsSection holds only the skills found in a dedicated skills section.
type ResumeRecord struct {
	Text          string            `json:"text"`
	Sections      map[string]string `json:"sections"`
	SkillsAll     []string          `json:"skills_all"`
	SkillsSection []string          `json:"skills_section"`
}

// Validate validates the ResumeRecord using the validator.
// A resume with neither text nor extracted skills cannot be matched against
// anything and is rejected here rather than producing all-zero rankings.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Text) == "" && len(r.SkillsAll) == 0 {
		return fmt.Errorf("resume record has no text and no skills")
	}
	return nil
}

// SkillsText returns the text of the dedicated skills section if present,
// falling back to the full resume text. Evidence collection prioritizes the
// skills section because it concentrates the most reliable skill mentions.
func (r *ResumeRecord) SkillsText() string {
	if s, ok := r.Sections["skills"]; ok && strings.TrimSpace(s) != "" {
		return s
	}
	return r.Text
}
