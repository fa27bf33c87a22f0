package answer

// AnswerType tags the kind of entity a canonical answer names. Some matchers
// use it to pick domain-appropriate behavior (e.g. the synonym table is
// partitioned by domain).
type AnswerType string

const (
	TypePerson     AnswerType = "person"
	TypePlace      AnswerType = "place"
	TypeThing      AnswerType = "thing"
	TypeTitle      AnswerType = "title"
	TypeNumeric    AnswerType = "numeric"
	TypeScientific AnswerType = "scientific"
)

// CanonicalAnswer is the authoritative correct-answer record for a question.
// It is owned by the question store; this package only reads it.
type CanonicalAnswer struct {
	// Primary is the canonical phrasing of the correct answer.
	Primary string

	// Acceptable lists alternate phrasings that score as fully correct,
	// in the order the question author listed them.
	Acceptable []string

	// PromptMoreSpecific lists answers that are on the right track but
	// too vague to accept outright (e.g. "Roosevelt" when the answer is
	// "Theodore Roosevelt"). They never match; callers may use them to
	// prompt the contestant for more detail.
	PromptMoreSpecific []string

	// Type tags what kind of entity the answer names.
	Type AnswerType

	// Domains are free-form subject tags (e.g. "geography", "chemistry")
	// used to narrow synonym-table lookups.
	Domains []string
}

// MatchType identifies which matcher produced a verdict.
type MatchType string

const (
	MatchExact      MatchType = "exact"
	MatchAcceptable MatchType = "acceptable"
	MatchFuzzy      MatchType = "fuzzy"
	MatchPhonetic   MatchType = "phonetic"
	MatchNGram      MatchType = "ngram"
	MatchToken      MatchType = "token"
	MatchSynonym    MatchType = "synonym"
	MatchLinguistic MatchType = "linguistic"
	MatchSemantic   MatchType = "semantic"
	MatchLLM        MatchType = "llm"
	MatchNone       MatchType = "none"
)

// Tier identifies which matching stage produced a verdict.
type Tier string

const (
	TierAlgorithmic Tier = "algorithmic"
	TierSemantic    Tier = "semantic"
	TierLLM         Tier = "llm"
)

// Result is the verdict for a single validation request.
type Result struct {
	// Correct reports whether the response was accepted.
	Correct bool

	// Confidence quantifies certainty of the verdict in [0, 1].
	// 1.0 for exact/acceptable matches, 0.0 when nothing matched.
	Confidence float64

	// MatchType names the matcher that accepted the response, or
	// MatchNone when no matcher did.
	MatchType MatchType

	// MatchedAnswer is the canonical or acceptable phrasing the response
	// was matched against. Empty when MatchType is MatchNone.
	MatchedAnswer string

	// TierUsed is the stage that produced the verdict. A no-match result
	// reports TierAlgorithmic.
	TierUsed Tier

	// Explanation is a one-line rationale, populated only by the
	// reasoning (LLM) tier.
	Explanation string

	// NeedsMoreSpecific reports that the response matched one of the
	// answer's prompt-only phrasings: right direction, too vague to
	// accept. Callers use it to prompt the contestant for more detail.
	NeedsMoreSpecific bool

	// Attempts lists, in execution order, the names of every matcher
	// that ran for this request. Diagnostic only; not part of the
	// pass/fail contract.
	Attempts []string
}

// NoMatch is the canonical rejection result.
func NoMatch() Result {
	return Result{
		Correct:    false,
		Confidence: 0,
		MatchType:  MatchNone,
		TierUsed:   TierAlgorithmic,
	}
}
