package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndTrims(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "python", n.Normalize("  Python  "))
	assert.Equal(t, "docker", n.Normalize("DOCKER"))
	assert.Equal(t, "machine learning", n.Normalize("Machine   Learning"))
}

func TestNormalize_StripsSurroundingPunctuation(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "python", n.Normalize("(Python),"))
	assert.Equal(t, "sql", n.Normalize("SQL."))
	// Symbols that belong to skill names survive
	assert.Equal(t, "c++", n.Normalize("C++"))
	assert.Equal(t, "c#", n.Normalize("C#"))
	assert.Equal(t, "ci/cd", n.Normalize("CI/CD"))
}

func TestNormalize_ResolvesAliases(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "javascript", n.Normalize("JS"))
	assert.Equal(t, "go", n.Normalize("Golang"))
	assert.Equal(t, "kubernetes", n.Normalize("k8s"))
	assert.Equal(t, "pytorch", n.Normalize("Torch"))
	assert.Equal(t, "scikit-learn", n.Normalize("sklearn"))
	assert.Equal(t, "ci/cd", n.Normalize("CICD"))
}

func TestNormalize_CustomAliasTable(t *testing.T) {
	n := NewNormalizer(map[string]string{"es": "elasticsearch"})

	assert.Equal(t, "elasticsearch", n.Normalize("ES"))
	// A custom table replaces the defaults rather than merging with them
	assert.Equal(t, "js", n.Normalize("js"))
}

func TestNormalize_UnrecognizedInputIsTotal(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "some unknown tool", n.Normalize("Some Unknown Tool"))
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   "))
	assert.Equal(t, "", n.Normalize("()"))
}

func TestNormalizeSet_DeduplicatesAndSorts(t *testing.T) {
	n := NewNormalizer(nil)

	set := n.NormalizeSet([]string{"Python", "JS", "javascript", "", "AWS", "python"})

	assert.Equal(t, []string{"aws", "javascript", "python"}, set)
}

func TestVariants_IncludesAliases(t *testing.T) {
	n := NewNormalizer(nil)

	variants := n.Variants("go")

	assert.Contains(t, variants, "go")
	assert.Contains(t, variants, "golang")
	assert.Contains(t, variants, "go lang")
}
