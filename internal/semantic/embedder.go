// Package semantic implements the embedding-based matcher: both strings
// are embedded with a sentence-embedding model and compared by cosine
// similarity. The model is an explicitly loaded, explicitly released
// resource; everything here degrades to "tier unavailable" when it is
// not loaded.
package semantic

import (
	"context"
	"errors"
	"math"
)

// ErrModelNotLoaded reports that an embedding was requested before the
// model was loaded (or after it was unloaded). The orchestrator maps it
// to tier-unavailable, never to a caller-visible failure.
var ErrModelNotLoaded = errors.New("embedding model not loaded")

// Embedder produces fixed-dimension sentence embeddings. Implementations
// must be safe for concurrent Embed calls on a loaded model.
type Embedder interface {
	// Embed returns the unit-normalized embedding vector for text.
	// Returns ErrModelNotLoaded when no model is available.
	Embed(ctx context.Context, text string) ([]float32, error)

	// ModelID identifies the embedding model, used as a cache key
	// component so vectors from different models never mix.
	ModelID() string
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for mismatched or zero-magnitude inputs. For unit-normalized
// vectors this is just the dot product, but magnitudes are computed
// anyway so callers don't have to guarantee normalization.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// normalizeVector scales v to unit length in place. Zero vectors are
// left untouched.
func normalizeVector(v []float32) {
	var mag float64
	for _, x := range v {
		mag += float64(x) * float64(x)
	}
	if mag == 0 {
		return
	}
	mag = math.Sqrt(mag)
	for i := range v {
		v[i] = float32(float64(v[i]) / mag)
	}
}
