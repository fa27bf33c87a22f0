package matcher

import (
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
)

func TestNGramSimilarity_Identical(t *testing.T) {
	if got := NGramSimilarity("mississippi", "mississippi"); got < 0.999 {
		t.Errorf("identical strings scored %v, want 1.0", got)
	}
}

func TestNGramSimilarity_Disjoint(t *testing.T) {
	if got := NGramSimilarity("xyz", "abc"); got != 0 {
		t.Errorf("disjoint strings scored %v, want 0", got)
	}
}

func TestNGramSimilarity_NearMiss(t *testing.T) {
	// A dropped trailing letter in a long phrase keeps most grams intact.
	close := NGramSimilarity("united states of america", "united states of americ")
	far := NGramSimilarity("united states of america", "confederate states")
	if close <= far {
		t.Errorf("near miss scored %v, unrelated scored %v", close, far)
	}
	if close < 0.80 {
		t.Errorf("near miss scored %v, want >= 0.80", close)
	}
}

func TestNGramMatcher(t *testing.T) {
	m := NewNGramMatcher(DefaultThresholds())

	res := m.Attempt(makeInput("united states of americ", "United States of America"))
	if res == nil {
		t.Fatal("expected ngram match")
	}
	if res.MatchType != answer.MatchNGram {
		t.Errorf("match type = %q", res.MatchType)
	}
	if res.Confidence < DefaultThresholds().NGramThreshold {
		t.Errorf("confidence %v below threshold", res.Confidence)
	}

	if res := m.Attempt(makeInput("Saturn", "Jupiter")); res != nil {
		t.Errorf("unexpected match: %+v", res)
	}
	if res := m.Attempt(makeInput("", "Jupiter")); res != nil {
		t.Errorf("empty response matched: %+v", res)
	}
}
