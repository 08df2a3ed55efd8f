package ingestion

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// headingAliases maps normalized resume heading lines to canonical section
// names. Unknown headings fall into "other".
var headingAliases = map[string]string{
	// Summary
	"summary":              "summary",
	"professional summary": "summary",
	"profile":              "summary",
	"objective":            "summary",

	// Skills
	"skills":           "skills",
	"technical skills": "skills",
	"technologies":     "skills",
	"tech stack":       "skills",

	// Experience
	"experience":              "experience",
	"work experience":         "experience",
	"professional experience": "experience",
	"employment":              "experience",
	"employment history":      "experience",

	// Projects
	"projects":           "projects",
	"personal projects":  "projects",
	"selected projects":  "projects",
	"project experience": "projects",

	// Education
	"education":           "education",
	"academic background": "education",

	// Certifications
	"certifications": "certifications",
	"certificates":   "certifications",
	"licenses":       "certifications",

	// Leadership
	"leadership":            "leadership",
	"leadership experience": "leadership",
	"activities":            "leadership",
	"extracurricular":       "leadership",

	// Awards
	"awards":  "awards",
	"honors":  "awards",
	"honours": "awards",

	// Publications
	"publications": "publications",
}

// bulletPrefixes mark content lines that can never be headings.
var bulletPrefixes = []string{"-", "•", "*", "–", "—"}

// ResumeParser parses raw resume text into a structured ResumeRecord.
type ResumeParser struct {
	extractor *parsing.Extractor
}

// NewResumeParser creates a ResumeParser. A nil extractor uses the default
// skill vocabulary.
func NewResumeParser(extractor *parsing.Extractor) *ResumeParser {
	if extractor == nil {
		extractor = parsing.NewExtractor(nil, nil)
	}
	return &ResumeParser{extractor: extractor}
}

// ParseFile reads and parses a plain-text resume file.
func (p *ResumeParser) ParseFile(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return p.Parse(string(data)), nil
}

// Parse splits the resume into canonical sections, extracts the skill sets,
// and returns the structured record. SkillsAll comes from the whole text;
// SkillsSection only from the dedicated skills section, where mentions are
// most reliable.
func (p *ResumeParser) Parse(text string) *types.ResumeRecord {
	text = normalizeText(text)
	sections := splitSections(text)

	return &types.ResumeRecord{
		Text:          text,
		Sections:      sections,
		SkillsAll:     p.extractor.Extract(text),
		SkillsSection: p.extractor.Extract(sections["skills"]),
	}
}

// splitSections groups resume lines under canonical section names based on
// heading detection. Text before the first heading becomes the summary; a
// resume without any headings is all summary.
func splitSections(text string) map[string]string {
	lines := strings.Split(text, "\n")

	content := make(map[string][]string)
	current := ""
	var preamble []string

	flushPreamble := func() {
		joined := strings.TrimSpace(strings.Join(preamble, "\n"))
		if joined != "" {
			content["summary"] = append(content["summary"], joined)
		}
		preamble = nil
	}

	for _, line := range lines {
		if looksLikeHeading(line) {
			if current == "" {
				flushPreamble()
			}
			canonical, ok := headingAliases[normalizeHeading(line)]
			if !ok {
				canonical = "other"
			}
			current = canonical
			continue
		}
		if current == "" {
			preamble = append(preamble, line)
		} else {
			content[current] = append(content[current], line)
		}
	}
	flushPreamble()

	sections := make(map[string]string, len(content))
	for name, sectionLines := range content {
		joined := strings.TrimSpace(strings.Join(sectionLines, "\n"))
		if joined != "" {
			sections[name] = joined
		}
	}
	return sections
}

// normalizeHeading prepares a candidate heading line for alias matching.
func normalizeHeading(line string) string {
	s := strings.ToLower(strings.TrimSpace(line))
	s = strings.TrimRight(s, ":")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " -•*–—\t")
}

// looksLikeHeading reports whether a line reads as a section heading: either
// a known heading alias, or a short all-caps line.
func looksLikeHeading(line string) bool {
	raw := strings.TrimSpace(line)
	if raw == "" || len(raw) > 60 {
		return false
	}
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return false
		}
	}

	norm := normalizeHeading(raw)
	if _, ok := headingAliases[norm]; ok {
		return true
	}

	if isUpper(raw) && len(raw) >= 3 && len(raw) <= 30 {
		if len(strings.Fields(raw)) >= 2 {
			return true
		}
		switch norm {
		case "education", "projects", "experience", "skills":
			return true
		}
	}
	return false
}

// isUpper reports whether a line is all-caps and contains at least one letter.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
