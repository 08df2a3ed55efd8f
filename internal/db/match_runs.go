package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/engine"
)

// MatchRun is one persisted ranking of a resume against a set of jobs.
type MatchRun struct {
	ID          uuid.UUID `json:"id"`
	JobCount    int       `json:"job_count"`
	Blend       float64   `json:"blend"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// CreateMatchRun creates a new match run record and returns its ID.
func (db *DB) CreateMatchRun(ctx context.Context, jobCount int, blend float64) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (job_count, blend, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		jobCount, blend,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}
	return id, nil
}

// SaveResults stores the ordered results of a match run. Rank is the 1-based
// position in the final ordering; the full result (including evidence) is
// kept as JSON.
func (db *DB) SaveResults(ctx context.Context, runID uuid.UUID, ranking *engine.Ranking) error {
	for i, result := range ranking.Results {
		content, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal match result: %w", err)
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO match_results (run_id, rank, title, company, score, semantic_score, content)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			runID, i+1, result.Title, result.Company, result.Score, result.SemanticScore, content,
		)
		if err != nil {
			return fmt.Errorf("failed to save match result: %w", err)
		}
	}
	return nil
}

// CompleteMatchRun marks a match run as completed.
func (db *DB) CompleteMatchRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE match_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete match run: %w", err)
	}
	return nil
}

// GetMatchRun loads a match run by ID.
func (db *DB) GetMatchRun(ctx context.Context, runID uuid.UUID) (*MatchRun, error) {
	var run MatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_count, blend, status, created_at, COALESCE(completed_at, 'epoch'::timestamptz)
		 FROM match_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.JobCount, &run.Blend, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return &run, nil
}
