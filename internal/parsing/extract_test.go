package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FindsSkillsInText(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("We use Python and PostgreSQL, deployed on AWS with Docker.")

	assert.Equal(t, []string{"aws", "docker", "postgresql", "python"}, skills)
}

func TestExtract_ResolvesVariantsToCanonical(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("Experience with Golang, k8s and sklearn required.")

	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "scikit-learn")
}

func TestExtract_StrictSkillsNeedWordBoundaries(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("We are a Google-scale company building categories.")
	assert.NotContains(t, skills, "go")
	assert.NotContains(t, skills, "c")

	skills = ex.Extract("Write Go services backed by SQL.")
	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "sql")
}

func TestExtract_CDoesNotMatchInsideCppOrCsharp(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("Strong C++ and C# background.")

	assert.Contains(t, skills, "c++")
	assert.Contains(t, skills, "c#")
	assert.NotContains(t, skills, "c")

	skills = ex.Extract("Embedded firmware in C.")
	assert.Contains(t, skills, "c")
}

func TestExtract_SqlNotMatchedInsideOtherWords(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("We run MySQL and PostgreSQL clusters.")

	assert.Contains(t, skills, "mysql")
	assert.Contains(t, skills, "postgresql")
	assert.NotContains(t, skills, "sql")
}

func TestExtract_EmptyTextYieldsEmptySet(t *testing.T) {
	ex := NewExtractor(nil, nil)

	assert.Empty(t, ex.Extract(""))
	assert.Empty(t, ex.Extract("   \n\t  "))
}

func TestExtract_CustomInventory(t *testing.T) {
	ex := NewExtractor(nil, []string{"Erlang", "Elixir"})

	skills := ex.Extract("Python and Elixir on the backend.")

	assert.Equal(t, []string{"elixir"}, skills)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	ex := NewExtractor(nil, nil)

	skills := ex.Extract("DOCKER, Kubernetes and terraform")

	assert.Equal(t, []string{"docker", "kubernetes", "terraform"}, skills)
}
