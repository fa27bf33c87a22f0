package matcher

import (
	"strings"

	"github.com/quizbee/adjudicator/internal/answer"
)

// irregularLemmas maps irregular inflected forms to their base form.
// Covers the forms that actually show up in transcribed answers; regular
// inflection is handled by suffix rules.
var irregularLemmas = map[string]string{
	"went": "go", "gone": "go", "goes": "go",
	"was": "be", "were": "be", "is": "be", "are": "be", "am": "be", "been": "be",
	"has": "have", "had": "have",
	"did": "do", "does": "do", "done": "do",
	"said": "say", "says": "say",
	"made": "make", "took": "take", "taken": "take",
	"came": "come", "saw": "see", "seen": "see",
	"wrote": "write", "written": "write",
	"found": "find", "fought": "fight", "won": "win",
	"led": "lead", "left": "leave", "built": "build",
	"children": "child", "men": "man", "women": "woman",
	"mice": "mouse", "geese": "goose", "feet": "foot", "teeth": "tooth",
	"people": "person", "oxen": "ox", "lives": "life", "wolves": "wolf",
	"leaves": "leaf", "knives": "knife", "halves": "half",
	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
}

// LinguisticMatcher accepts a response whose lemmatized content words
// match a candidate's, so "discovering penicillin" matches "discovered
// penicillin". Stopwords are ignored; word order is not.
type LinguisticMatcher struct {
	confidence float64
}

func NewLinguisticMatcher(th Thresholds) *LinguisticMatcher {
	return &LinguisticMatcher{confidence: th.LinguisticConfidence}
}

func (m *LinguisticMatcher) Name() string { return "linguistic" }

func (m *LinguisticMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	rl := lemmatizePhrase(in.Response)
	if rl == "" {
		return nil
	}
	for _, c := range in.Candidates {
		cl := lemmatizePhrase(c.Norm)
		if cl == "" {
			continue
		}
		// A lemma match on identical surface text is just the exact
		// matcher's case again; require the lemmas to have done work.
		if rl == cl && in.Response != c.Norm {
			return &answer.Result{
				Correct:       true,
				Confidence:    m.confidence,
				MatchType:     answer.MatchLinguistic,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return nil
}

// lemmatizePhrase reduces each non-stopword to its lemma and rejoins.
func lemmatizePhrase(s string) string {
	var out []string
	for _, w := range strings.Fields(s) {
		if stopwords[w] {
			continue
		}
		out = append(out, Lemmatize(w))
	}
	return strings.Join(out, " ")
}

// Lemmatize reduces a single lowercase word to a base form using an
// irregular-forms table and ordered suffix rules. It never shortens a
// word below three characters, which keeps short words like "was" (table)
// and "is" (table) out of the suffix rules entirely.
func Lemmatize(w string) string {
	if base, ok := irregularLemmas[w]; ok {
		return base
	}
	if len(w) <= 3 {
		return w
	}

	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y" // countries -> country
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2] // classes -> class
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2] // boxes -> box, churches -> church
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		stem := w[:len(w)-3]
		return undouble(stem) // running -> run, discovering -> discover
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y" // studied -> study
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		stem := w[:len(w)-2]
		return undouble(stem) // discovered -> discover, stopped -> stop
	case strings.HasSuffix(w, "est") && len(w) > 5:
		return w[:len(w)-3] // tallest -> tall
	case strings.HasSuffix(w, "ss"):
		return w // glass stays glass
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is"):
		return w[:len(w)-1] // planets -> planet
	}
	return w
}

// undouble collapses a doubled final consonant left by suffix stripping
// ("stopp" -> "stop") but leaves legitimate doubles like "ll" in "fall".
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) &&
		stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	return stem
}
