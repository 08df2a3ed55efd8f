package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a resume",
	Long: `Parses job postings (raw text, saved HTML, or structured JSON) and a resume,
ranks every job with the matching engine, prints the top matches, and writes a
full match report as JSON.

Configuration (weight table, alias table, blend) can be loaded from a JSON
file using --config. Command-line flags override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath string
	matchJobsPath   string
	matchJobsJSON   string
	matchResumePath string
	matchResumeJSON string
	matchBlend      float64
	matchTopN       int
	matchReportPath string
	matchAPIKey     string
	matchDBURL      string
	matchVerbose    bool
	matchSkillsOnly bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchJobsPath, "jobs", "j", "", "Path to a postings file: plain text with ==== separators, or saved HTML")
	matchCommand.Flags().StringVar(&matchJobsJSON, "jobs-json", "", "Path to structured job records JSON (mutually exclusive with --jobs)")
	matchCommand.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to a plain-text resume file")
	matchCommand.Flags().StringVar(&matchResumeJSON, "resume-json", "", "Path to a structured resume record JSON (mutually exclusive with --resume)")
	matchCommand.Flags().Float64Var(&matchBlend, "blend", -1, "Skill vs semantic mix in [0,1]; 1 ranks on skills alone (default from config)")
	matchCommand.Flags().IntVar(&matchTopN, "top", 5, "Number of top matches to print")
	matchCommand.Flags().StringVarP(&matchReportPath, "out", "o", "match_report.json", "Path to write the full match report (empty to skip)")
	matchCommand.Flags().BoolVar(&matchSkillsOnly, "skills-only", false, "Skip semantic scoring entirely (no embedding calls)")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for match run persistence
	matchCommand.Flags().StringVar(&matchDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCommand)
}

// matchReport is the serialized output of a match run, modeled on the report
// the orchestration layer persists.
type matchReport struct {
	GeneratedAt string              `json:"generated_at"`
	Blend       float64             `json:"blend"`
	SkillsUsed  []string            `json:"skills_used"`
	Results     []types.MatchResult `json:"results"`
	Warnings    []engine.Warning    `json:"warnings,omitempty"`
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMatchConfig()
	if err != nil {
		return err
	}

	if matchJobsPath == "" && matchJobsJSON == "" {
		return fmt.Errorf("one of --jobs or --jobs-json is required")
	}
	if matchJobsPath != "" && matchJobsJSON != "" {
		return fmt.Errorf("--jobs and --jobs-json are mutually exclusive")
	}
	if matchResumePath == "" && matchResumeJSON == "" {
		return fmt.Errorf("one of --resume or --resume-json is required")
	}
	if matchResumePath != "" && matchResumeJSON != "" {
		return fmt.Errorf("--resume and --resume-json are mutually exclusive")
	}

	normalizer := cfg.Normalizer()
	extractor := parsing.NewExtractor(normalizer, cfg.Inventory)
	printer := observability.NewPrinter(os.Stdout)

	jobs, err := loadJobs(extractor)
	if err != nil {
		return err
	}
	resume, err := loadResume(extractor)
	if err != nil {
		return err
	}
	if matchVerbose {
		printer.PrintJobRecords(jobs)
		printer.PrintResumeRecord(resume)
		printer.PrintWeightTable(cfg.WeightTable())
	}

	embedder, cleanup, err := buildEmbedder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	matcher := engine.New(embedder,
		engine.WithNormalizer(normalizer),
		engine.WithWorkers(cfg.Workers),
		engine.WithMaxSnippets(cfg.MaxSnippets),
	)

	ranking, err := matcher.Rank(ctx, resume, jobs, cfg.WeightTable(), cfg.Blend)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	printer.PrintRanking(ranking, matchTopN)
	printer.PrintWarnings(ranking.Warnings)

	if matchReportPath != "" {
		if err := writeReport(matchReportPath, cfg.Blend, resume, ranking); err != nil {
			return err
		}
		fmt.Printf("Match report written to %s\n", matchReportPath)
	}

	persistRun(ctx, cfg, ranking)
	return nil
}

// loadMatchConfig loads the config file (or defaults) and applies flag
// overrides.
func loadMatchConfig() (*config.Config, error) {
	cfg := config.Default()
	if matchConfigPath != "" {
		loaded, err := config.Load(matchConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if matchBlend >= 0 {
		cfg.Blend = matchBlend
	}
	if matchSkillsOnly {
		cfg.Blend = 1
	}
	if matchAPIKey != "" {
		cfg.APIKey = matchAPIKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if matchDBURL != "" {
		cfg.DatabaseURL = matchDBURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if matchVerbose {
		cfg.Verbose = true
	}
	matchVerbose = cfg.Verbose

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadJobs loads job records either by parsing a postings file or by reading
// schema-validated structured JSON.
func loadJobs(extractor *parsing.Extractor) ([]*types.JobRecord, error) {
	if matchJobsJSON != "" {
		data, err := os.ReadFile(matchJobsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read jobs JSON %s: %w", matchJobsJSON, err)
		}
		if err := schemas.ValidateJobRecords(data); err != nil {
			return nil, fmt.Errorf("invalid jobs JSON %s: %w", matchJobsJSON, err)
		}
		var jobs []*types.JobRecord
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("failed to parse jobs JSON %s: %w", matchJobsJSON, err)
		}
		return jobs, nil
	}

	jobs, err := ingestion.NewJobParser(extractor).ParseFile(matchJobsPath)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no job postings found in %s", matchJobsPath)
	}
	return jobs, nil
}

// loadResume loads the resume record either by parsing a text file or by
// reading schema-validated structured JSON.
func loadResume(extractor *parsing.Extractor) (*types.ResumeRecord, error) {
	if matchResumeJSON != "" {
		data, err := os.ReadFile(matchResumeJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume JSON %s: %w", matchResumeJSON, err)
		}
		if err := schemas.ValidateResumeRecord(data); err != nil {
			return nil, fmt.Errorf("invalid resume JSON %s: %w", matchResumeJSON, err)
		}
		var resume types.ResumeRecord
		if err := json.Unmarshal(data, &resume); err != nil {
			return nil, fmt.Errorf("failed to parse resume JSON %s: %w", matchResumeJSON, err)
		}
		return &resume, nil
	}

	return ingestion.NewResumeParser(extractor).ParseFile(matchResumePath)
}

// buildEmbedder creates the Gemini embedder unless semantic scoring is
// disabled or no API key is available. Without an embedder the engine still
// ranks on skills; each job just carries a degradation warning when blend < 1.
func buildEmbedder(ctx context.Context, cfg *config.Config) (semantic.Embedder, func(), error) {
	noop := func() {}
	if cfg.Blend == 1 {
		// Semantic score has zero contribution; skip embedding entirely.
		return nil, noop, nil
	}
	if cfg.APIKey == "" {
		fmt.Println("Note: no GEMINI_API_KEY configured; semantic scores degrade to 0")
		return nil, noop, nil
	}

	gemini, err := semantic.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create embedder: %w", err)
	}
	return gemini, func() { _ = gemini.Close() }, nil
}

// writeReport serializes the full ranking to a JSON report file.
func writeReport(path string, blend float64, resume *types.ResumeRecord, ranking *engine.Ranking) error {
	report := matchReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Blend:       blend,
		SkillsUsed:  resume.SkillsAll,
		Results:     ranking.Results,
		Warnings:    ranking.Warnings,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write match report %s: %w", path, err)
	}
	return nil
}

// persistRun stores the ranking in PostgreSQL when a database URL is
// configured. Persistence failures are reported but never fail the match.
func persistRun(ctx context.Context, cfg *config.Config, ranking *engine.Ranking) {
	if cfg.DatabaseURL == "" {
		return
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Warning: failed to connect to database: %v\n", err)
		fmt.Printf("Continuing without persistence...\n")
		return
	}
	defer database.Close()

	runID, err := database.CreateMatchRun(ctx, len(ranking.Results), cfg.Blend)
	if err != nil {
		fmt.Printf("Warning: failed to create match run: %v\n", err)
		return
	}
	status := "completed"
	if err := database.SaveResults(ctx, runID, ranking); err != nil {
		fmt.Printf("Warning: failed to save match results: %v\n", err)
		status = "failed"
	}
	if err := database.CompleteMatchRun(ctx, runID, status); err != nil {
		fmt.Printf("Warning: failed to complete match run: %v\n", err)
		return
	}
	if cfg.Verbose {
		fmt.Printf("[VERBOSE] Match run %s persisted (%d results)\n", runID, len(ranking.Results))
	}
}
