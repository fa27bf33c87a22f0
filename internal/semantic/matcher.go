package semantic

import (
	"context"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/matcher"
)

// Config holds the semantic tier's tunables.
type Config struct {
	// MatchThreshold is the minimum cosine similarity for a match.
	// Named configuration rather than a literal: the product
	// requirements have carried conflicting values for it.
	MatchThreshold float64
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{MatchThreshold: 0.80}
}

// Matcher is the Tier-2 matcher: embeds the response and each candidate
// and accepts on cosine similarity. Unlike Tier-1 matchers it performs
// inference, so Attempt takes a context and can fail; the orchestrator
// contains every failure as tier-unavailable.
type Matcher struct {
	embedder Embedder
	cfg      Config
}

// NewMatcher creates the semantic matcher. The embedder is typically a
// *Cache wrapping the real backend.
func NewMatcher(embedder Embedder, cfg Config) *Matcher {
	return &Matcher{embedder: embedder, cfg: cfg}
}

func (m *Matcher) Name() string { return "semantic" }

// Attempt embeds both sides and accepts the highest-similarity candidate
// at or above the threshold. Returns (nil, nil) when no candidate
// qualifies.
func (m *Matcher) Attempt(ctx context.Context, in *matcher.Input) (*answer.Result, error) {
	if in.Response == "" {
		return nil, nil
	}
	respVec, err := m.embedder.Embed(ctx, in.Response)
	if err != nil {
		return nil, err
	}

	var best *answer.Result
	for _, c := range in.Candidates {
		if c.Norm == "" {
			continue
		}
		candVec, err := m.embedder.Embed(ctx, c.Norm)
		if err != nil {
			return nil, err
		}
		sim := CosineSimilarity(respVec, candVec)
		if sim < m.cfg.MatchThreshold {
			continue
		}
		if best == nil || sim > best.Confidence {
			best = &answer.Result{
				Correct:       true,
				Confidence:    sim,
				MatchType:     answer.MatchSemantic,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierSemantic,
			}
		}
	}
	return best, nil
}
