package matcher

import (
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
)

func TestExactMatcher_Primary(t *testing.T) {
	m := NewExactMatcher()
	res := m.Attempt(makeInput("The Mississippi", "Mississippi"))
	if res == nil {
		t.Fatal("expected match")
	}
	if res.MatchType != answer.MatchExact {
		t.Errorf("match type = %q, want exact", res.MatchType)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", res.Confidence)
	}
	if res.MatchedAnswer != "Mississippi" {
		t.Errorf("matched answer = %q", res.MatchedAnswer)
	}
}

func TestExactMatcher_Acceptable(t *testing.T) {
	m := NewExactMatcher()
	res := m.Attempt(makeInput("FDR", "Franklin Delano Roosevelt", "FDR", "Franklin Roosevelt"))
	if res == nil {
		t.Fatal("expected match")
	}
	if res.MatchType != answer.MatchAcceptable {
		t.Errorf("match type = %q, want acceptable", res.MatchType)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", res.Confidence)
	}
}

func TestExactMatcher_NoMatch(t *testing.T) {
	m := NewExactMatcher()
	if res := m.Attempt(makeInput("Saturn", "Jupiter")); res != nil {
		t.Errorf("unexpected match: %+v", res)
	}
	if res := m.Attempt(makeInput("", "Jupiter")); res != nil {
		t.Errorf("empty response matched: %+v", res)
	}
}
