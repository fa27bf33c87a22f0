// Package matcher implements the algorithmic (Tier-1) answer matchers.
// Each matcher is a pure, stateless function over normalized text; the
// orchestrator runs them in a fixed order and stops at the first match.
package matcher

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/normalize"
)

// Matcher is the shared contract for one matching strategy.
// Attempt returns nil when the strategy does not accept the response.
type Matcher interface {
	Name() string
	Attempt(in *Input) *answer.Result
}

// Candidate pairs a canonical phrasing with its normalized form so each
// matcher compares normalized text but reports the original.
type Candidate struct {
	Raw  string
	Norm string
	Type answer.MatchType // MatchExact for the primary, MatchAcceptable otherwise
}

// Input is the normalized view of a validation request shared by every
// Tier-1 matcher. Built once per request.
type Input struct {
	// Response is the contestant's answer, normalized.
	Response string

	// Candidates holds the primary answer first, then each alternate,
	// all normalized.
	Candidates []Candidate

	// Domains narrows synonym-table lookups.
	Domains []string

	// Type tags the kind of entity the answer names.
	Type answer.AnswerType
}

// NewInput normalizes a request into matcher input.
func NewInput(req *answer.Request) *Input {
	ca := req.Canonical
	in := &Input{
		Response: normalize.Normalize(req.Response),
		Domains:  ca.Domains,
		Type:     ca.Type,
	}
	in.Candidates = append(in.Candidates, Candidate{
		Raw:  ca.Primary,
		Norm: normalize.Normalize(ca.Primary),
		Type: answer.MatchExact,
	})
	for _, alt := range ca.Acceptable {
		in.Candidates = append(in.Candidates, Candidate{
			Raw:  alt,
			Norm: normalize.Normalize(alt),
			Type: answer.MatchAcceptable,
		})
	}
	return in
}

// Thresholds collects every tunable Tier-1 constant in one place. They
// can be overridden from YAML via ParseThresholds.
type Thresholds struct {
	// FuzzyMinDistance is the floor on the Levenshtein allowance.
	FuzzyMinDistance int `yaml:"fuzzy_min_distance"`

	// FuzzyToleranceDivisor sets the length-proportional allowance:
	// distance must be <= max(FuzzyMinDistance, len/FuzzyToleranceDivisor).
	FuzzyToleranceDivisor int `yaml:"fuzzy_tolerance_divisor"`

	// PhoneticConfidence is the fixed confidence reported for a
	// double-metaphone code match.
	PhoneticConfidence float64 `yaml:"phonetic_confidence"`

	// NGramThreshold is the minimum combined n-gram similarity.
	NGramThreshold float64 `yaml:"ngram_threshold"`

	// TokenThreshold is the minimum averaged Jaccard/Dice token score.
	TokenThreshold float64 `yaml:"token_threshold"`

	// SynonymConfidence is the fixed confidence for a synonym-table match.
	SynonymConfidence float64 `yaml:"synonym_confidence"`

	// LinguisticConfidence is the fixed confidence for a lemma match.
	LinguisticConfidence float64 `yaml:"linguistic_confidence"`
}

// DefaultThresholds returns the production constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FuzzyMinDistance:      2,
		FuzzyToleranceDivisor: 5,
		PhoneticConfidence:    0.87,
		NGramThreshold:        0.80,
		TokenThreshold:        0.78,
		SynonymConfidence:     0.92,
		LinguisticConfidence:  0.82,
	}
}

// ParseThresholds overlays YAML data on the defaults, so a tuning file
// only needs the keys it changes.
func ParseThresholds(data []byte) (Thresholds, error) {
	th := DefaultThresholds()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds: %w", err)
	}
	return th, nil
}

// Run executes matchers in order and returns the first accepting result
// along with the names of every matcher attempted.
func Run(matchers []Matcher, in *Input) (*answer.Result, []string) {
	attempted := make([]string, 0, len(matchers))
	for _, m := range matchers {
		attempted = append(attempted, m.Name())
		if res := m.Attempt(in); res != nil {
			return res, attempted
		}
	}
	return nil, attempted
}
