// Package matching computes the weighted skill-overlap score between one job
// posting and one resume.
package matching

import (
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SkillMatch is the outcome of comparing a job's skill set against a resume's.
// Matched and Missing partition the job's canonical skill set; both are sorted
// alphabetically for deterministic output.
type SkillMatch struct {
	Matched       []string
	Missing       []string
	MatchedWeight float64
	TotalWeight   float64
	Score         float64
}

// Match normalizes both skill sets and computes the weighted overlap.
//
// The score is the additive weight of matched skills over the additive weight
// of all job skills, with a 1.0 baseline for skills absent from the table. A
// job with no identifiable skills scores 0 rather than dividing by zero; that
// is a valid zero match, not an error.
func Match(jobSkills, resumeSkills []string, weights types.WeightTable, normalizer *parsing.Normalizer) SkillMatch {
	jobSet := normalizer.NormalizeSet(jobSkills)
	resumeSet := make(map[string]bool)
	for _, skill := range normalizer.NormalizeSet(resumeSkills) {
		resumeSet[skill] = true
	}

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0, len(jobSet))
	matchedWeight := 0.0
	totalWeight := 0.0

	// jobSet is already sorted, so Matched and Missing come out sorted too.
	for _, skill := range jobSet {
		weight := weights.Weight(skill)
		totalWeight += weight
		if resumeSet[skill] {
			matched = append(matched, skill)
			matchedWeight += weight
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = matchedWeight / totalWeight
	}

	return SkillMatch{
		Matched:       matched,
		Missing:       missing,
		MatchedWeight: matchedWeight,
		TotalWeight:   totalWeight,
		Score:         score,
	}
}
