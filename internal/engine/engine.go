// Package engine ranks job postings against a resume by blending weighted
// skill overlap with semantic text similarity, and surfaces the textual
// evidence behind every match.
package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/evidence"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultWorkers bounds the fan-out over jobs. Each (resume, job) pair is
// independent, so ranking is safe to parallelize; the only shared state is the
// read-only weight table and the embedding cache.
const DefaultWorkers = 4

// Warning records a condition that degraded one job's result without aborting
// the batch, e.g. an embedding failure recovered to semantic_score 0.
type Warning struct {
	JobID   int    `json:"job_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Ranking is the ordered output of one matching run.
type Ranking struct {
	Results  []types.MatchResult `json:"results"`
	Warnings []Warning           `json:"warnings,omitempty"`
}

// Engine is the matching engine. It holds only configuration and the
// embedding capability; every Rank call is an independent batch computation
// with its own embedding cache.
type Engine struct {
	embedder    semantic.Embedder
	normalizer  *parsing.Normalizer
	maxSnippets int
	workers     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithNormalizer replaces the default skill normalizer (and with it the alias
// table used for comparison and evidence needles).
func WithNormalizer(n *parsing.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// WithWorkers sets the job fan-out limit. Values below 1 force sequential
// processing.
func WithWorkers(workers int) Option {
	return func(e *Engine) {
		if workers < 1 {
			workers = 1
		}
		e.workers = workers
	}
}

// WithMaxSnippets sets how many evidence snippets are collected per skill and
// side.
func WithMaxSnippets(n int) Option {
	return func(e *Engine) {
		e.maxSnippets = n
	}
}

// New creates an Engine over the given embedding capability. A nil embedder is
// allowed: every semantic score then degrades to 0 with a warning, while skill
// matching still works.
func New(embedder semantic.Embedder, opts ...Option) *Engine {
	e := &Engine{
		embedder:   embedder,
		normalizer: parsing.NewNormalizer(nil),
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank matches the resume against every job and returns results ordered by
// blended score (descending), then total weight (descending), then title
// (ascending). The ordering is total, so repeated runs over identical input
// produce identical output.
//
// blend in [0,1] controls the mix: score = blend*skillScore +
// (1-blend)*semanticScore. Input records are validated before any scoring; a
// failure surfaces as *ValidationError. Embedding failures degrade single
// jobs to semantic_score 0 and are collected as Warnings.
func (e *Engine) Rank(ctx context.Context, resume *types.ResumeRecord, jobs []*types.JobRecord, weights types.WeightTable, blend float64) (*Ranking, error) {
	if blend < 0 || blend > 1 {
		return nil, &ValidationError{Record: "blend", Message: fmt.Sprintf("must be in [0,1], got %g", blend)}
	}
	if resume == nil {
		return nil, &ValidationError{Record: "resume", Message: "record is nil"}
	}
	if err := resume.Validate(); err != nil {
		return nil, &ValidationError{Record: "resume", Cause: err}
	}
	for i, job := range jobs {
		if job == nil {
			return nil, &ValidationError{Record: fmt.Sprintf("jobs[%d]", i), Message: "record is nil"}
		}
		if err := job.Validate(); err != nil {
			return nil, &ValidationError{Record: fmt.Sprintf("jobs[%d]", i), Cause: err}
		}
	}

	// Per-run embedding cache: the resume text is embedded once and shared
	// across all jobs.
	scorer := semantic.NewScorer(e.embedderOrUnavailable())
	builder := evidence.NewBuilder(e.normalizer, e.maxSnippets)

	results := make([]types.MatchResult, len(jobs))
	warnings := make([]Warning, 0)
	var warnMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			result, warn := e.matchOne(gctx, scorer, builder, resume, job, weights, blend)
			results[i] = result
			if warn != nil {
				warnMu.Lock()
				warnings = append(warnings, *warn)
				warnMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortResults(results)
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].JobID < warnings[j].JobID })

	return &Ranking{Results: results, Warnings: warnings}, nil
}

// matchOne produces the MatchResult for a single (resume, job) pair.
func (e *Engine) matchOne(ctx context.Context, scorer *semantic.Scorer, builder *evidence.Builder, resume *types.ResumeRecord, job *types.JobRecord, weights types.WeightTable, blend float64) (types.MatchResult, *Warning) {
	skillMatch := matching.Match(job.Skills, resume.SkillsAll, weights, e.normalizer)

	semanticScore := 0.0
	var warn *Warning
	if sim, err := scorer.Similarity(ctx, job.Text, resume.Text); err != nil {
		// Degrade this pair to semantic_score 0; one embedding failure must
		// never poison the batch.
		warn = &Warning{JobID: job.ID, Title: job.Title, Message: err.Error()}
	} else {
		semanticScore = sim
	}

	// Evidence only for matched skills. Every matched skill gets an entry on
	// both sides, even when a side found nothing.
	evidenceJob := make(map[string][]string, len(skillMatch.Matched))
	evidenceResume := make(map[string][]string, len(skillMatch.Matched))
	for _, skill := range skillMatch.Matched {
		skillEvidence := builder.ForSkill(skill, job, resume)
		evidenceJob[skill] = skillEvidence.Job
		evidenceResume[skill] = skillEvidence.Resume
	}

	score := blend*skillMatch.Score + (1-blend)*semanticScore
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return types.MatchResult{
		Title:         job.Title,
		Company:       job.Company,
		Score:         round3(score),
		SemanticScore: round3(semanticScore),
		MatchedSkills: skillMatch.Matched,
		MissingSkills: skillMatch.Missing,
		MatchedWeight: round2(skillMatch.MatchedWeight),
		TotalWeight:   round2(skillMatch.TotalWeight),
		Evidence: types.MatchEvidence{
			Job:    evidenceJob,
			Resume: evidenceResume,
		},
	}, warn
}

// embedderOrUnavailable lets an Engine without an embedder still rank on
// skills alone: every similarity call fails and is degraded per pair.
func (e *Engine) embedderOrUnavailable() semantic.Embedder {
	if e.embedder != nil {
		return e.embedder
	}
	return semantic.EmbedderFunc(func(context.Context, string) ([]float32, error) {
		return nil, fmt.Errorf("no embedder configured")
	})
}

// sortResults orders results by score descending, total weight descending,
// then title ascending. Rounded values are compared so the order matches what
// callers see in serialized output.
func sortResults(results []types.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.TotalWeight != b.TotalWeight {
			return a.TotalWeight > b.TotalWeight
		}
		return a.Title < b.Title
	})
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
