// Package evidence locates the textual snippets that support a skill match in
// job postings and resumes.
package evidence

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultMaxSnippets bounds how many snippets are collected per skill and
// side. Selection is deterministic: the first occurrences in document order.
const DefaultMaxSnippets = 2

// Builder finds line-level evidence snippets for canonical skills.
type Builder struct {
	normalizer  *parsing.Normalizer
	maxSnippets int
}

// NewBuilder creates a Builder. maxSnippets <= 0 uses DefaultMaxSnippets.
func NewBuilder(normalizer *parsing.Normalizer, maxSnippets int) *Builder {
	if normalizer == nil {
		normalizer = parsing.NewNormalizer(nil)
	}
	if maxSnippets <= 0 {
		maxSnippets = DefaultMaxSnippets
	}
	return &Builder{normalizer: normalizer, maxSnippets: maxSnippets}
}

// ForSkill collects evidence for one matched skill on both sides of a match.
// The resume side prioritizes the dedicated skills section when present,
// falling back to the full resume text. A side without evidence yields an
// empty list; that is reported, not an error.
func (b *Builder) ForSkill(skill string, job *types.JobRecord, resume *types.ResumeRecord) types.SkillEvidence {
	return types.SkillEvidence{
		Job:    b.Find(job.Text, skill),
		Resume: b.Find(resume.SkillsText(), skill),
	}
}

// Find returns up to maxSnippets lines of text containing the canonical skill
// or one of its alias variants, in document order. Skills that are unsafe to
// match by substring (c, c++, c#, go, sql) use word-boundary patterns instead.
func (b *Builder) Find(text, canonical string) []string {
	snippets := make([]string, 0, b.maxSnippets)
	if canonical == "" || strings.TrimSpace(text) == "" {
		return snippets
	}

	strictPat, strict := parsing.StrictPattern(canonical)

	// Alias variants are always safe substring needles; the canonical name
	// itself only when the skill is not strict.
	var needles []string
	for _, variant := range b.normalizer.Variants(canonical) {
		if strict && variant == canonical {
			continue
		}
		needles = append(needles, variant)
	}

	for _, line := range splitLines(text) {
		if len(snippets) >= b.maxSnippets {
			break
		}
		if strict && strictPat.MatchString(line) {
			snippets = append(snippets, line)
			continue
		}
		low := strings.ToLower(line)
		for _, needle := range needles {
			if strings.Contains(low, needle) {
				snippets = append(snippets, line)
				break
			}
		}
	}
	return snippets
}

// splitLines breaks text into trimmed, whitespace-collapsed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
