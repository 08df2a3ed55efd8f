package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.7, cfg.Blend)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 2, cfg.MaxSnippets)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.NotEmpty(t, cfg.Weights)
	assert.NotEmpty(t, cfg.Aliases)
	assert.NotEmpty(t, cfg.Inventory)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FillsUnsetFieldsFromDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"blend": 0.5, "weights": {"Python": 3.0}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Blend)
	assert.Equal(t, map[string]float64{"Python": 3.0}, cfg.Weights)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.NotEmpty(t, cfg.Aliases)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	_, err = Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"blend": `)

	_, err := Load(path)

	assert.ErrorContains(t, err, "parse")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Blend = 1.5
	assert.ErrorContains(t, cfg.Validate(), "blend")

	cfg = Default()
	cfg.Blend = -0.1
	assert.ErrorContains(t, cfg.Validate(), "blend")

	cfg = Default()
	cfg.Workers = -1
	assert.ErrorContains(t, cfg.Validate(), "workers")

	cfg = Default()
	cfg.Weights = map[string]float64{"python": -2.0}
	assert.ErrorContains(t, cfg.Validate(), "python")
}

func TestWeightTable_NormalizesKeys(t *testing.T) {
	cfg := Default()
	cfg.Weights = map[string]float64{"Python": 2.5, "K8s": 3.0}

	table := cfg.WeightTable()

	assert.Equal(t, 2.5, table.Weight("python"))
	assert.Equal(t, 3.0, table.Weight("kubernetes"))
}

func TestDefaultWeights_AreCanonical(t *testing.T) {
	cfg := Default()
	normalizer := cfg.Normalizer()

	for skill := range cfg.Weights {
		assert.Equal(t, skill, normalizer.Normalize(skill), "weight keys are stored canonical")
	}
}
