package semantic

import "fmt"

// EmbeddingError represents a failure of the embedding capability for a given
// text. The engine recovers from it by degrading the affected pair's semantic
// score to zero; it never aborts a ranking batch.
type EmbeddingError struct {
	Message string
	Cause   error
}

func (e *EmbeddingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding unavailable: %s", e.Message)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Cause
}
