// Package parsing provides skill normalization and rule-based skill extraction
// for job postings and resumes.
package parsing

import (
	"sort"
	"strings"
)

// surroundingPunct is trimmed from the edges of a skill string. Symbols that
// can be part of a skill name (+, #, /) are deliberately not in the cut set so
// that "c++", "c#" and "ci/cd" survive normalization.
const surroundingPunct = ".,;:!?\"'`()[]{}<>*"

// defaultAliases maps common skill name variants to their canonical lowercase
// form. The canonical form of every skill is its normalized lowercase
// spelling; all set comparisons in the engine happen on canonical strings.
var defaultAliases = map[string]string{
	// Languages and runtimes
	"golang":  "go",
	"go lang": "go",
	"js":      "javascript",
	"ts":      "typescript",
	"nodejs":  "node.js",
	"node js": "node.js",

	// Frameworks
	"reactjs":  "react",
	"react.js": "react",
	"vuejs":    "vue",
	"vue.js":   "vue",

	// ML / data
	"torch":        "pytorch",
	"hugging face": "huggingface",
	"ml flow":      "mlflow",
	"scikit learn": "scikit-learn",
	"sklearn":      "scikit-learn",

	// Infra
	"k8s":      "kubernetes",
	"postgres": "postgresql",

	// Dev practices
	"cicd":       "ci/cd",
	"ci cd":      "ci/cd",
	"unit tests": "unit testing",
	"unit-tests": "unit testing",
	"unit-test":  "unit testing",
}

// DefaultAliases returns a copy of the built-in alias table. Configuration may
// extend or replace it.
func DefaultAliases() map[string]string {
	aliases := make(map[string]string, len(defaultAliases))
	for variant, canonical := range defaultAliases {
		aliases[variant] = canonical
	}
	return aliases
}

// Normalizer canonicalizes skill strings so that overlap comparison is
// exact-set rather than fuzzy. It is pure and total: unrecognized input comes
// back trimmed and lower-cased rather than failing.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a Normalizer with the given alias table. A nil table
// uses the built-in defaults.
func NewNormalizer(aliases map[string]string) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Normalizer{aliases: aliases}
}

// Normalize returns the canonical form of a skill string: trimmed,
// lower-cased, surrounding punctuation stripped, inner whitespace collapsed,
// and aliases resolved.
func (n *Normalizer) Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return ""
	}
	s = strings.Trim(s, surroundingPunct)
	s = strings.Join(strings.Fields(s), " ")
	if canonical, ok := n.aliases[s]; ok {
		return canonical
	}
	return s
}

// NormalizeSet normalizes every skill in the slice and returns the resulting
// canonical set as a sorted slice without duplicates or empty entries.
func (n *Normalizer) NormalizeSet(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		canonical := n.Normalize(skill)
		if canonical != "" {
			seen[canonical] = true
		}
	}
	out := make([]string, 0, len(seen))
	for canonical := range seen {
		out = append(out, canonical)
	}
	sort.Strings(out)
	return out
}

// Variants returns the canonical skill itself plus every alias that resolves
// to it. Evidence collection and extraction search for all variants of a
// skill, not just its canonical spelling.
func (n *Normalizer) Variants(canonical string) []string {
	variants := []string{canonical}
	for variant, c := range n.aliases {
		if c == canonical {
			variants = append(variants, variant)
		}
	}
	sort.Strings(variants)
	return variants
}
