package semantic

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Scorer computes semantic similarity scores between text blocks. Embeddings
// are cached by exact text content for the lifetime of the Scorer, since one
// resume text is compared against every job in a run. The cache is safe for
// concurrent use and entries are never invalidated once written.
type Scorer struct {
	embedder Embedder
	cache    sync.Map // text -> []float32
	group    singleflight.Group
}

// NewScorer creates a Scorer over the given embedding capability.
func NewScorer(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Similarity returns a similarity score in [0, 1] for two text blocks: the
// cosine similarity of their embeddings rescaled from [-1, 1] via (cos+1)/2.
// Empty or whitespace-only text on either side yields 0 with a nil error.
// An embedder failure is returned as an *EmbeddingError for the caller to
// degrade from.
func (s *Scorer) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		return 0, nil
	}

	vecA, err := s.embed(ctx, textA)
	if err != nil {
		return 0, err
	}
	vecB, err := s.embed(ctx, textB)
	if err != nil {
		return 0, err
	}

	score := (cosineSimilarity(vecA, vecB) + 1) / 2
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

// embed returns the cached embedding for a text, computing it at most once
// even under concurrent callers. Failed computations are not cached, so a
// transient embedder failure for one job does not poison later lookups.
func (s *Scorer) embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := s.cache.Load(text); ok {
		return cached.([]float32), nil
	}

	vec, err, _ := s.group.Do(text, func() (interface{}, error) {
		if cached, ok := s.cache.Load(text); ok {
			return cached, nil
		}
		vec, err := s.embedder.Embed(ctx, text)
		if err != nil {
			return nil, &EmbeddingError{Message: "embed text", Cause: err}
		}
		if len(vec) == 0 {
			return nil, &EmbeddingError{Message: "embedder returned an empty vector"}
		}
		actual, _ := s.cache.LoadOrStore(text, vec)
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return vec.([]float32), nil
}
