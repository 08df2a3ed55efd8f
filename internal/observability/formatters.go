// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRecords outputs a short summary of the parsed job records.
func (p *Printer) PrintJobRecords(jobs []*types.JobRecord) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parsed %d job postings:\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", job.ID, job.Title))
		if job.Company != "" {
			sb.WriteString(fmt.Sprintf(" — %s", job.Company))
		}
		sb.WriteString("\n")
		if len(job.Skills) > 0 {
			skills := strings.Join(job.Skills, ", ")
			if len(skills) > 44 {
				skills = skills[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
	}
	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(jobs)-maxItemsToShow))
	}

	p.printBox("PARSED JOB POSTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeRecord outputs a summary of the parsed resume: detected sections
// and extracted skills.
func (p *Printer) PrintResumeRecord(resume *types.ResumeRecord) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if len(resume.Sections) > 0 {
		names := make([]string, 0, len(resume.Sections))
		for name := range resume.Sections {
			names = append(names, name)
		}
		sb.WriteString(fmt.Sprintf("Sections: %s\n", strings.Join(sortedCopy(names), ", ")))
	}
	sb.WriteString(fmt.Sprintf("Skills found: %d", len(resume.SkillsAll)))
	if len(resume.SkillsSection) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d in skills section)", len(resume.SkillsSection)))
	}
	sb.WriteString("\n")
	if len(resume.SkillsAll) > 0 {
		skills := strings.Join(resume.SkillsAll, ", ")
		if len(skills) > 100 {
			skills = skills[:97] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeightTable outputs the skill weight table in effect for a run, sorted
// by weight descending then name.
func (p *Printer) PrintWeightTable(weights types.WeightTable) {
	if len(weights) == 0 {
		return
	}

	skills := make([]string, 0, len(weights))
	for skill := range weights {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if weights[skills[i]] != weights[skills[j]] {
			return weights[skills[i]] > weights[skills[j]]
		}
		return skills[i] < skills[j]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d weighted skills (baseline 1.0):\n\n", len(skills)))
	count := min(len(skills), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%-24s %.2g\n", skills[i], weights[skills[i]]))
	}
	if len(skills) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(skills)-count))
	}

	p.printBox("SKILL WEIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked matches with scores, weights and skill
// overlap.
func (p *Printer) PrintRanking(ranking *engine.Ranking, topN int) {
	if ranking == nil || len(ranking.Results) == 0 {
		return
	}
	if topN <= 0 {
		topN = maxItemsToShow
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(ranking.Results)))

	count := min(len(ranking.Results), topN)
	for i := 0; i < count; i++ {
		result := ranking.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, result.Title))
		if result.Company != "" {
			sb.WriteString(fmt.Sprintf(" — %s", result.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.3f (semantic %.3f, weights %.2g/%.2g)\n",
			result.Score, result.SemanticScore, result.MatchedWeight, result.TotalWeight))
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranking.Results) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(ranking.Results)-count))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintWarnings outputs degradation warnings collected during ranking.
func (p *Printer) PrintWarnings(warnings []engine.Warning) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, warning := range warnings {
		sb.WriteString(fmt.Sprintf("job %d (%s): %s", warning.JobID, warning.Title, warning.Message))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("WARNINGS", sb.String())
}

// sortedCopy returns a sorted copy of a string slice.
func sortedCopy(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
