package matcher

import (
	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/synonyms"
)

// SynonymMatcher accepts a response that shares a curated synonym set with
// a candidate ("USA" for "United States"). Lookups are narrowed by the
// canonical answer's domain tags when present.
type SynonymMatcher struct {
	table      *synonyms.Table
	confidence float64
}

func NewSynonymMatcher(table *synonyms.Table, th Thresholds) *SynonymMatcher {
	return &SynonymMatcher{table: table, confidence: th.SynonymConfidence}
}

func (m *SynonymMatcher) Name() string { return "synonym" }

func (m *SynonymMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" || m.table == nil {
		return nil
	}
	for _, c := range in.Candidates {
		if ok, _ := m.table.SameSet(in.Response, c.Norm, in.Domains); ok {
			return &answer.Result{
				Correct:       true,
				Confidence:    m.confidence,
				MatchType:     answer.MatchSynonym,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return nil
}
