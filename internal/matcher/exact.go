package matcher

import "github.com/quizbee/adjudicator/internal/answer"

// ExactMatcher accepts a response that, after normalization, equals the
// primary answer (exact) or any listed alternate (acceptable). It always
// runs first and short-circuits every other matcher regardless of policy.
type ExactMatcher struct{}

func NewExactMatcher() *ExactMatcher { return &ExactMatcher{} }

func (m *ExactMatcher) Name() string { return "exact" }

func (m *ExactMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	for _, c := range in.Candidates {
		if in.Response == c.Norm {
			return &answer.Result{
				Correct:       true,
				Confidence:    1.0,
				MatchType:     c.Type,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return nil
}
