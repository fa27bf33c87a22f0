package matcher

import (
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
)

// makeInput builds matcher input directly from raw strings.
func makeInput(response, primary string, alternates ...string) *Input {
	req, err := answer.NewRequest(response, &answer.CanonicalAnswer{
		Primary:    primary,
		Acceptable: alternates,
	}, answer.PolicyStandard)
	if err != nil {
		panic(err)
	}
	return NewInput(req)
}

func TestNewInputNormalizesAllCandidates(t *testing.T) {
	in := makeInput("  The NILE ", "The Nile River", "Nile")
	if in.Response != "nile" {
		t.Errorf("response normalized to %q", in.Response)
	}
	if len(in.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(in.Candidates))
	}
	if in.Candidates[0].Norm != "nile river" || in.Candidates[0].Type != answer.MatchExact {
		t.Errorf("primary candidate = %+v", in.Candidates[0])
	}
	if in.Candidates[1].Norm != "nile" || in.Candidates[1].Type != answer.MatchAcceptable {
		t.Errorf("alternate candidate = %+v", in.Candidates[1])
	}
}

// countingMatcher wraps a Matcher and records invocations.
type countingMatcher struct {
	inner Matcher
	calls int
}

func (c *countingMatcher) Name() string { return c.inner.Name() }
func (c *countingMatcher) Attempt(in *Input) *answer.Result {
	c.calls++
	return c.inner.Attempt(in)
}

func TestRunStopsAtFirstMatch(t *testing.T) {
	th := DefaultThresholds()
	exact := &countingMatcher{inner: NewExactMatcher()}
	fuzzy := &countingMatcher{inner: NewFuzzyMatcher(th)}

	in := makeInput("Jupiter", "Jupiter")
	res, attempted := Run([]Matcher{exact, fuzzy}, in)
	if res == nil || res.MatchType != answer.MatchExact {
		t.Fatalf("expected exact match, got %+v", res)
	}
	if exact.calls != 1 {
		t.Errorf("exact matcher ran %d times, want 1", exact.calls)
	}
	if fuzzy.calls != 0 {
		t.Errorf("fuzzy matcher ran %d times after earlier match, want 0", fuzzy.calls)
	}
	if len(attempted) != 1 || attempted[0] != "exact" {
		t.Errorf("attempted = %v, want [exact]", attempted)
	}
}

func TestParseThresholdsOverlaysDefaults(t *testing.T) {
	th, err := ParseThresholds([]byte("phonetic_confidence: 0.90\ntoken_threshold: 0.70\n"))
	if err != nil {
		t.Fatalf("ParseThresholds: %v", err)
	}
	if th.PhoneticConfidence != 0.90 || th.TokenThreshold != 0.70 {
		t.Errorf("overrides not applied: %+v", th)
	}
	def := DefaultThresholds()
	if th.FuzzyMinDistance != def.FuzzyMinDistance || th.NGramThreshold != def.NGramThreshold {
		t.Errorf("unset keys lost their defaults: %+v", th)
	}

	if _, err := ParseThresholds([]byte("phonetic_confidence: [")); err == nil {
		t.Error("malformed YAML parsed")
	}
}

func TestRunExhaustsChainOnNoMatch(t *testing.T) {
	th := DefaultThresholds()
	chain := []Matcher{NewExactMatcher(), NewFuzzyMatcher(th), NewNGramMatcher(th)}
	in := makeInput("Saturn", "Jupiter")
	res, attempted := Run(chain, in)
	if res != nil {
		t.Fatalf("expected no match, got %+v", res)
	}
	if len(attempted) != 3 {
		t.Errorf("attempted %v, want all three matchers", attempted)
	}
}
