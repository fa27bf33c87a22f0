package matcher

import (
	"strings"

	"github.com/quizbee/adjudicator/internal/answer"
)

// ngram similarity weights. Character n-grams dominate because transcribed
// answers mostly differ by spelling, not word choice.
const (
	charBigramWeight  = 0.4
	charTrigramWeight = 0.4
	wordBigramWeight  = 0.2
)

// NGramMatcher accepts a response whose weighted n-gram similarity to a
// candidate meets the configured threshold: character bigram Jaccard (0.4)
// + character trigram Jaccard (0.4) + word bigram Jaccard (0.2).
type NGramMatcher struct {
	threshold float64
}

func NewNGramMatcher(th Thresholds) *NGramMatcher {
	return &NGramMatcher{threshold: th.NGramThreshold}
}

func (m *NGramMatcher) Name() string { return "ngram" }

func (m *NGramMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	var best *answer.Result
	for _, c := range in.Candidates {
		if c.Norm == "" {
			continue
		}
		score := NGramSimilarity(in.Response, c.Norm)
		if score < m.threshold {
			continue
		}
		if best == nil || score > best.Confidence {
			best = &answer.Result{
				Correct:       true,
				Confidence:    score,
				MatchType:     answer.MatchNGram,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return best
}

// NGramSimilarity computes the weighted combination of character-bigram,
// character-trigram, and word-bigram Jaccard similarities in [0, 1].
func NGramSimilarity(a, b string) float64 {
	return charBigramWeight*jaccard(charNGrams(a, 2), charNGrams(b, 2)) +
		charTrigramWeight*jaccard(charNGrams(a, 3), charNGrams(b, 3)) +
		wordBigramWeight*jaccard(wordBigrams(a), wordBigrams(b))
}

// charNGrams returns the set of character n-grams of s, spaces included.
// Strings shorter than n contribute themselves as a single gram so very
// short answers still compare.
func charNGrams(s string, n int) map[string]bool {
	set := make(map[string]bool)
	if len(s) < n {
		if s != "" {
			set[s] = true
		}
		return set
	}
	for i := 0; i+n <= len(s); i++ {
		set[s[i:i+n]] = true
	}
	return set
}

// wordBigrams returns the set of adjacent word pairs. Single-word strings
// contribute the word itself, so one-word answers are compared by word
// identity at this level.
func wordBigrams(s string) map[string]bool {
	set := make(map[string]bool)
	words := strings.Fields(s)
	if len(words) == 1 {
		set[words[0]] = true
		return set
	}
	for i := 0; i+1 < len(words); i++ {
		set[words[i]+" "+words[i+1]] = true
	}
	return set
}

// jaccard computes |a ∩ b| / |a ∪ b|. Two empty sets score zero.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for g := range a {
		if b[g] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
