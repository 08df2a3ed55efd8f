package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// strictPatterns match skills whose names are too short or too common to find
// by plain substring search. Word boundaries are approximated with explicit
// character classes because RE2 has no lookaround; '+' and '#' are excluded
// from the trailing class so "c" never matches inside "c++" or "c#".
var strictPatterns = map[string]*regexp.Regexp{
	"go":  regexp.MustCompile(`(?i)(?:^|[^a-z0-9])go(?:$|[^a-z0-9+#])`),
	"sql": regexp.MustCompile(`(?i)(?:^|[^a-z0-9])sql(?:$|[^a-z0-9])`),
	"c++": regexp.MustCompile(`(?i)(?:^|[^a-z0-9])c\+\+(?:$|[^a-z0-9+])`),
	"c#":  regexp.MustCompile(`(?i)(?:^|[^a-z0-9])c#(?:$|[^a-z0-9])`),
	"c":   regexp.MustCompile(`(?i)(?:^|[^a-z0-9])c(?:$|[^a-z0-9+#])`),
}

// StrictPattern returns the word-boundary pattern for a canonical skill that
// is risky to match by substring, or (nil, false) for ordinary skills.
func StrictPattern(canonical string) (*regexp.Regexp, bool) {
	pat, ok := strictPatterns[canonical]
	return pat, ok
}

// defaultInventory is the canonical skill vocabulary used by extraction.
// Everything is stored in normalized lowercase form.
var defaultInventory = []string{
	// Languages
	"python", "java", "c++", "c#", "javascript", "typescript", "go", "sql",
	"shell", "bash", "c", "verilog",

	// ML frameworks
	"tensorflow", "pytorch", "keras", "scikit-learn", "xgboost", "lightgbm",

	// Data frameworks
	"numpy", "pandas", "matplotlib", "seaborn", "plotly", "sqlalchemy", "spark",

	// NLP
	"spacy", "nltk", "transformers", "huggingface", "bert", "word2vec",

	// Work practices
	"test driven development", "tdd", "ci/cd", "git", "version control",
	"unit testing", "code review", "agile", "scrum", "paired programming",

	// Databases
	"postgresql", "mysql", "mongodb", "nosql", "redis", "sqlite",

	// Cloud / DevOps / MLOps
	"aws", "ec2", "s3", "lambda", "vpc", "docker", "kubernetes", "terraform",
	"jenkins", "mlflow", "kubeflow", "airflow", "luigi",

	// Misc
	"rest api", "graphql", "flask", "fastapi", "docker compose", "jupyter",
	"linux", "fpga", "react", "vue", "node.js",
}

// DefaultInventory returns a copy of the built-in skill vocabulary.
func DefaultInventory() []string {
	inventory := make([]string, len(defaultInventory))
	copy(inventory, defaultInventory)
	return inventory
}

// Extractor finds canonical skills in raw text using word-boundary patterns
// over a fixed vocabulary. It replaces exact-token matching with compiled
// regular expressions so that variants like "golang" or "Ci/CD" still resolve
// to their canonical skill.
type Extractor struct {
	normalizer *Normalizer
	// canonical skill -> patterns for the skill and all of its variants
	patterns map[string][]*regexp.Regexp
}

// NewExtractor creates an Extractor over the given vocabulary. A nil or empty
// inventory uses the built-in defaults. Inventory entries are normalized
// before pattern compilation, so callers may pass display-cased names.
func NewExtractor(normalizer *Normalizer, inventory []string) *Extractor {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if len(inventory) == 0 {
		inventory = DefaultInventory()
	}

	patterns := make(map[string][]*regexp.Regexp, len(inventory))
	for _, entry := range inventory {
		canonical := normalizer.Normalize(entry)
		if canonical == "" {
			continue
		}
		if _, exists := patterns[canonical]; exists {
			continue
		}

		var pats []*regexp.Regexp
		for _, variant := range normalizer.Variants(canonical) {
			if pat, ok := StrictPattern(variant); ok {
				pats = append(pats, pat)
				continue
			}
			pats = append(pats, compileVariantPattern(variant))
		}
		patterns[canonical] = pats
	}

	return &Extractor{normalizer: normalizer, patterns: patterns}
}

// Extract returns the sorted set of canonical skills found in the text.
// Whitespace-only text yields an empty result.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	found := make([]string, 0)
	for canonical, pats := range e.patterns {
		for _, pat := range pats {
			if pat.MatchString(text) {
				found = append(found, canonical)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// compileVariantPattern compiles a case-insensitive word-boundary pattern for
// a literal skill variant.
func compileVariantPattern(variant string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9])` + regexp.QuoteMeta(variant) + `(?:$|[^a-z0-9])`)
}
