package matcher

import (
	"strings"

	"github.com/quizbee/adjudicator/internal/answer"
)

// stopwords are dropped before token comparison so connective words don't
// dilute the overlap between phrasings like "battle of hastings" and
// "hastings battle".
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "in": true, "at": true,
	"on": true, "to": true, "for": true, "with": true, "by": true, "from": true,
}

// TokenMatcher accepts a response whose content tokens overlap a
// candidate's strongly enough: the average of Jaccard and Dice
// coefficients over stopword-filtered token sets must meet the threshold.
type TokenMatcher struct {
	threshold float64
}

func NewTokenMatcher(th Thresholds) *TokenMatcher {
	return &TokenMatcher{threshold: th.TokenThreshold}
}

func (m *TokenMatcher) Name() string { return "token" }

func (m *TokenMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	rt := contentTokens(in.Response)
	if len(rt) == 0 {
		return nil
	}
	var best *answer.Result
	for _, c := range in.Candidates {
		ct := contentTokens(c.Norm)
		if len(ct) == 0 {
			continue
		}
		score := TokenSimilarity(rt, ct)
		if score < m.threshold {
			continue
		}
		if best == nil || score > best.Confidence {
			best = &answer.Result{
				Correct:       true,
				Confidence:    score,
				MatchType:     answer.MatchToken,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return best
}

// TokenSimilarity averages the Jaccard and Dice coefficients of two token
// sets. Dice rewards overlap more generously than Jaccard; the average
// sits between the two.
func TokenSimilarity(a, b map[string]bool) float64 {
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	jac := float64(inter) / float64(union)
	dice := 2 * float64(inter) / float64(len(a)+len(b))
	return (jac + dice) / 2
}

// contentTokens splits normalized text into its non-stopword tokens.
func contentTokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		if !stopwords[tok] {
			set[tok] = true
		}
	}
	return set
}
