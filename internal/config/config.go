// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/evidence"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultBlend is the fixed mix between skill-overlap score and semantic
// similarity: score = blend*skill + (1-blend)*semantic. Skill overlap
// dominates because it is the auditable part of the score.
const DefaultBlend = 0.7

// DefaultWorkers bounds the parallel fan-out over jobs.
const DefaultWorkers = 4

// Config represents the matcher configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Matching
	Weights     map[string]float64 `json:"weights,omitempty"`      // Skill weight table (canonical name -> weight)
	Aliases     map[string]string  `json:"aliases,omitempty"`      // Skill alias table (variant -> canonical)
	Inventory   []string           `json:"inventory,omitempty"`    // Skill vocabulary for extraction
	Blend       float64            `json:"blend,omitempty"`        // Skill vs semantic mix in [0,1]
	MaxSnippets int                `json:"max_snippets,omitempty"` // Evidence snippets per skill and side
	Workers     int                `json:"workers,omitempty"`      // Parallel job fan-out

	// Embedding
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run persistence
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// Default returns the built-in configuration: the reconstructed weight and
// alias tables, skill-dominant blend, and the default embedding model.
func Default() *Config {
	return &Config{
		Weights:        DefaultWeights(),
		Aliases:        parsing.DefaultAliases(),
		Inventory:      parsing.DefaultInventory(),
		Blend:          DefaultBlend,
		MaxSnippets:    evidence.DefaultMaxSnippets,
		Workers:        DefaultWorkers,
		EmbeddingModel: semantic.DefaultEmbeddingModel,
	}
}

// Load loads configuration from a JSON file, filling unset fields from the
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// fillDefaults fills zero-valued fields from the built-in defaults.
func (c *Config) fillDefaults() {
	defaults := Default()
	if c.Weights == nil {
		c.Weights = defaults.Weights
	}
	if c.Aliases == nil {
		c.Aliases = defaults.Aliases
	}
	if len(c.Inventory) == 0 {
		c.Inventory = defaults.Inventory
	}
	if c.Blend == 0 {
		c.Blend = defaults.Blend
	}
	if c.MaxSnippets == 0 {
		c.MaxSnippets = defaults.MaxSnippets
	}
	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = defaults.EmbeddingModel
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Blend < 0 || c.Blend > 1 {
		return fmt.Errorf("config error: 'blend' must be between 0.0 and 1.0, got %g", c.Blend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.MaxSnippets < 0 {
		return fmt.Errorf("config error: 'max_snippets' must be non-negative")
	}
	for skill, weight := range c.Weights {
		if weight < 0 {
			return fmt.Errorf("config error: weight for %q must be non-negative, got %g", skill, weight)
		}
	}
	return nil
}

// Normalizer builds the skill normalizer from the configured alias table.
func (c *Config) Normalizer() *parsing.Normalizer {
	return parsing.NewNormalizer(c.Aliases)
}

// WeightTable returns the weight table with keys normalized to canonical
// form, so config files may use display-cased skill names.
func (c *Config) WeightTable() types.WeightTable {
	normalizer := c.Normalizer()
	table := make(types.WeightTable, len(c.Weights))
	for skill, weight := range c.Weights {
		table[normalizer.Normalize(skill)] = weight
	}
	return table
}
