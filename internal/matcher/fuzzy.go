package matcher

import "github.com/quizbee/adjudicator/internal/answer"

// FuzzyMatcher accepts a response whose Levenshtein distance from a
// candidate is within roughly 20% of the candidate's length. It is the
// only matcher beyond exact/acceptable that a strict policy permits, so
// its verdict must depend on edit distance alone.
type FuzzyMatcher struct {
	minDistance int
	divisor     int
}

func NewFuzzyMatcher(th Thresholds) *FuzzyMatcher {
	return &FuzzyMatcher{minDistance: th.FuzzyMinDistance, divisor: th.FuzzyToleranceDivisor}
}

func (m *FuzzyMatcher) Name() string { return "fuzzy" }

func (m *FuzzyMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	var best *answer.Result
	for _, c := range in.Candidates {
		if c.Norm == "" {
			continue
		}
		allowance := len(c.Norm) / m.divisor
		if allowance < m.minDistance {
			allowance = m.minDistance
		}
		d := levenshtein(in.Response, c.Norm)
		if d > allowance {
			continue
		}
		conf := 1 - float64(d)/float64(len(c.Norm))
		if conf < 0.5 {
			conf = 0.5
		}
		if best == nil || conf > best.Confidence {
			best = &answer.Result{
				Correct:       true,
				Confidence:    conf,
				MatchType:     answer.MatchFuzzy,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return best
}

// levenshtein computes edit distance with a single-row DP over bytes.
// Inputs are already normalized, so byte comparison is sufficient for the
// ASCII-folded text the normalizer produces.
func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
