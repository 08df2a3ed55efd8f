package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestFind_ReturnsLinesContainingSkill(t *testing.T) {
	b := NewBuilder(nil, 0)

	text := "We build data pipelines.\nStrong Python skills required.\nBonus: Docker experience."

	assert.Equal(t, []string{"Strong Python skills required."}, b.Find(text, "python"))
	assert.Equal(t, []string{"Bonus: Docker experience."}, b.Find(text, "docker"))
}

func TestFind_MatchesAliasVariants(t *testing.T) {
	b := NewBuilder(nil, 0)

	text := "Services written in Golang.\nOrchestrated with k8s."

	assert.Equal(t, []string{"Services written in Golang."}, b.Find(text, "go"))
	assert.Equal(t, []string{"Orchestrated with k8s."}, b.Find(text, "kubernetes"))
}

func TestFind_StrictSkillsUseWordBoundaries(t *testing.T) {
	b := NewBuilder(nil, 0)

	text := "We are a Google partner.\nShip Go microservices.\nMySQL administration.\nWrite complex SQL queries."

	assert.Equal(t, []string{"Ship Go microservices."}, b.Find(text, "go"))
	assert.Equal(t, []string{"Write complex SQL queries."}, b.Find(text, "sql"))
}

func TestFind_CapsSnippetsInDocumentOrder(t *testing.T) {
	b := NewBuilder(nil, 2)

	text := "Python for scripting.\nPython for ML.\nPython for APIs.\nPython everywhere."

	snippets := b.Find(text, "python")

	assert.Equal(t, []string{"Python for scripting.", "Python for ML."}, snippets)
}

func TestFind_CollapsesWhitespaceInSnippets(t *testing.T) {
	b := NewBuilder(nil, 0)

	snippets := b.Find("   Python   and    SQL   \n", "python")

	assert.Equal(t, []string{"Python and SQL"}, snippets)
}

func TestFind_NoOccurrenceYieldsEmptyList(t *testing.T) {
	b := NewBuilder(nil, 0)

	snippets := b.Find("Nothing relevant here.", "terraform")

	assert.NotNil(t, snippets)
	assert.Empty(t, snippets)
}

func TestFind_EmptyInputs(t *testing.T) {
	b := NewBuilder(nil, 0)

	assert.Empty(t, b.Find("", "python"))
	assert.Empty(t, b.Find("Python everywhere.", ""))
}

func TestForSkill_CollectsBothSides(t *testing.T) {
	b := NewBuilder(nil, 0)

	job := &types.JobRecord{
		Title: "Backend Engineer",
		Text:  "Own our Python services.\nDeploy with Docker.",
	}
	resume := &types.ResumeRecord{
		Text: "Built Python ETL jobs at Acme.",
	}

	ev := b.ForSkill("python", job, resume)

	assert.Equal(t, []string{"Own our Python services."}, ev.Job)
	assert.Equal(t, []string{"Built Python ETL jobs at Acme."}, ev.Resume)
}

func TestForSkill_ResumeSidePrefersSkillsSection(t *testing.T) {
	b := NewBuilder(nil, 0)

	job := &types.JobRecord{Title: "SRE", Text: "Kubernetes at scale."}
	resume := &types.ResumeRecord{
		Text: "Experience\nRan Kubernetes clusters in production.\nSkills\nKubernetes, Terraform",
		Sections: map[string]string{
			"skills": "Kubernetes, Terraform",
		},
	}

	ev := b.ForSkill("kubernetes", job, resume)

	assert.Equal(t, []string{"Kubernetes, Terraform"}, ev.Resume)
}

func TestForSkill_MissingEvidenceIsEmptyNotError(t *testing.T) {
	b := NewBuilder(nil, 0)

	job := &types.JobRecord{Title: "Analyst", Skills: []string{"sql"}, Text: ""}
	resume := &types.ResumeRecord{Text: "Spreadsheets and dashboards."}

	ev := b.ForSkill("sql", job, resume)

	assert.Empty(t, ev.Job)
	assert.Empty(t, ev.Resume)
}
