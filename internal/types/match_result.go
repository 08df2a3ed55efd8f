// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillEvidence holds the supporting snippets for a single matched skill,
// separately for the job posting side and the resume side. A side with no
// discoverable evidence keeps an empty (non-nil) list; that is reported as-is,
// not treated as an error.
type SkillEvidence struct {
	Job    []string `json:"job"`
	Resume []string `json:"resume"`
}

// MatchEvidence maps each matched skill to its snippets on both sides.
type MatchEvidence struct {
	Job    map[string][]string `json:"job"`
	Resume map[string][]string `json:"resume"`
}

// MatchResult is the outcome of matching one resume against one job posting.
// It is created fresh per (resume, job) pair, never mutated after
// construction, and serializes to exactly these fields. Downstream reports
// depend on this shape.
type MatchResult struct {
	Title         string        `json:"title"`
	Company       string        `json:"company"`
	Score         float64       `json:"score"`
	SemanticScore float64       `json:"semantic_score"`
	MatchedSkills []string      `json:"matched_skills"`
	MissingSkills []string      `json:"missing_skills"`
	MatchedWeight float64       `json:"matched_weight"`
	TotalWeight   float64       `json:"total_weight"`
	Evidence      MatchEvidence `json:"evidence"`
}
