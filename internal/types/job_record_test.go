package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobRecordValidate(t *testing.T) {
	job := &JobRecord{ID: 1, Title: "Backend Engineer", Company: "Acme"}
	assert.NoError(t, job.Validate())

	// Empty skills and text are a valid zero match, not a validation failure
	job = &JobRecord{ID: 2, Title: "Mystery Role"}
	assert.NoError(t, job.Validate())

	job = &JobRecord{ID: 3}
	assert.Error(t, job.Validate(), "title is required")

	job = &JobRecord{ID: -1, Title: "Engineer"}
	assert.Error(t, job.Validate(), "id must be non-negative")
}

func TestResumeRecordValidate(t *testing.T) {
	resume := &ResumeRecord{Text: "Built things."}
	assert.NoError(t, resume.Validate())

	resume = &ResumeRecord{SkillsAll: []string{"python"}}
	assert.NoError(t, resume.Validate())

	resume = &ResumeRecord{}
	assert.Error(t, resume.Validate())

	resume = &ResumeRecord{Text: "   \n  "}
	assert.Error(t, resume.Validate(), "whitespace-only text with no skills")
}

func TestResumeRecordSkillsText(t *testing.T) {
	resume := &ResumeRecord{
		Text:     "full text",
		Sections: map[string]string{"skills": "Python, SQL"},
	}
	assert.Equal(t, "Python, SQL", resume.SkillsText())

	resume = &ResumeRecord{Text: "full text"}
	assert.Equal(t, "full text", resume.SkillsText())

	resume = &ResumeRecord{
		Text:     "full text",
		Sections: map[string]string{"skills": "   "},
	}
	assert.Equal(t, "full text", resume.SkillsText(), "blank section falls back to text")
}

func TestWeightTable(t *testing.T) {
	weights := WeightTable{"python": 2.5, "sql": 1.5}

	assert.Equal(t, 2.5, weights.Weight("python"))
	assert.Equal(t, 1.0, weights.Weight("cobol"), "unknown skills get the baseline")

	var empty WeightTable
	assert.Equal(t, 1.0, empty.Weight("python"))
}
