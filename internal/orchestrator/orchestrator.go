// Package orchestrator owns the validation cascade: it runs the Tier-1
// matchers in fixed order, then, when policy, device capability, and
// feature flags all permit, the semantic and reasoning tiers.
// Validate never returns an error: every tier-level failure is contained
// and the best already-computed result is returned instead.
package orchestrator

import (
	"context"
	"log/slog"

	"github.com/quizbee/adjudicator/internal/answer"
	"github.com/quizbee/adjudicator/internal/capability"
	"github.com/quizbee/adjudicator/internal/matcher"
	"github.com/quizbee/adjudicator/internal/normalize"
	"github.com/quizbee/adjudicator/internal/reasoning"
	"github.com/quizbee/adjudicator/internal/semantic"
	"github.com/quizbee/adjudicator/internal/synonyms"
)

// Options configures an Orchestrator for one device session.
type Options struct {
	// Thresholds are the Tier-1 tunables.
	Thresholds matcher.Thresholds

	// Synonyms is the loaded synonym table. Nil disables the synonym
	// matcher.
	Synonyms *synonyms.Table

	// Semantic is the optional Tier-2 matcher. Nil means the tier is
	// not compiled in / not loaded; the chain is identical either way.
	Semantic *semantic.Matcher

	// Judge is the optional Tier-3 matcher. Nil disables the tier.
	Judge *reasoning.Judge

	// DeviceTier is the hardware capability tier (1-3), computed once
	// per session by the platform probe.
	DeviceTier int

	// Flags is the admin feature-flag snapshot for this session.
	Flags capability.FeatureFlags

	Logger *slog.Logger
}

// Orchestrator validates answers for one session. The device tier and
// flag snapshot are fixed at construction; only the strictness policy
// varies per request. Safe for concurrent use when the underlying
// inference backend supports concurrent calls; otherwise route requests
// through a Service, which serializes them.
type Orchestrator struct {
	strictChain   []matcher.Matcher
	standardChain []matcher.Matcher
	semantic      *semantic.Matcher
	judge         *reasoning.Judge
	deviceTier    int
	flags         capability.FeatureFlags
	logger        *slog.Logger
}

// New builds an Orchestrator. The Tier-1 chains are constructed up front:
// a strict request can only ever traverse the exact and fuzzy matchers
// because no other matcher exists in its chain. Fairness is enforced by
// the chain's shape, not by per-matcher checks.
func New(opts Options) *Orchestrator {
	th := opts.Thresholds
	if th == (matcher.Thresholds{}) {
		th = matcher.DefaultThresholds()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	deviceTier := opts.DeviceTier
	if deviceTier < capability.TierAlgorithmic {
		deviceTier = capability.TierAlgorithmic
	}

	strictChain := []matcher.Matcher{
		matcher.NewExactMatcher(),
		matcher.NewFuzzyMatcher(th),
	}
	standardChain := append(append([]matcher.Matcher{}, strictChain...),
		matcher.NewSynonymMatcher(opts.Synonyms, th),
		matcher.NewPhoneticMatcher(th),
		matcher.NewNGramMatcher(th),
		matcher.NewTokenMatcher(th),
		matcher.NewLinguisticMatcher(th),
	)

	return &Orchestrator{
		strictChain:   strictChain,
		standardChain: standardChain,
		semantic:      opts.Semantic,
		judge:         opts.Judge,
		deviceTier:    deviceTier,
		flags:         opts.Flags,
		logger:        logger,
	}
}

// Validate runs the cascade and always returns a verdict. A degenerate
// request (nil or blank response) resolves to a no-match result, not an
// error. Cancelling ctx during Tier-2/3 inference degrades gracefully to
// the Tier-1 outcome.
func (o *Orchestrator) Validate(ctx context.Context, req *answer.Request) answer.Result {
	if req == nil || req.Canonical == nil {
		return answer.NoMatch()
	}

	in := matcher.NewInput(req)
	if in.Response == "" {
		return answer.NoMatch()
	}

	chain := o.standardChain
	if req.Policy == answer.PolicyStrict {
		chain = o.strictChain
	}

	res, attempted := matcher.Run(chain, in)
	if res != nil {
		res.Attempts = attempted
		return *res
	}

	// Tier 1 exhausted; every later tier falls back to this result.
	noMatch := answer.NoMatch()
	noMatch.Attempts = attempted

	// A response matching a prompt-only phrasing is a known-insufficient
	// answer. It stays incorrect and is never escalated, since the
	// looser tiers would happily equate it with the full answer.
	if matchesPromptOnly(req.Canonical, in.Response) {
		noMatch.NeedsMoreSpecific = true
		return noMatch
	}

	return o.runOptionalTiers(ctx, req, in, noMatch)
}

func matchesPromptOnly(ca *answer.CanonicalAnswer, normResponse string) bool {
	for _, p := range ca.PromptMoreSpecific {
		if normalize.Normalize(p) == normResponse {
			return true
		}
	}
	return false
}

// runOptionalTiers attempts Tier 2 and Tier 3 when the session gate
// permits, falling back to the Tier-1 result on any failure. Each tier
// is gated independently; a disabled or unloaded semantic tier is
// skipped without blocking the reasoning tier.
func (o *Orchestrator) runOptionalTiers(ctx context.Context, req *answer.Request, in *matcher.Input, tier1 answer.Result) answer.Result {
	if o.tierAvailable(capability.TierSemantic, req.Policy) && o.semantic != nil {
		if ctx.Err() != nil {
			return tier1
		}
		tier1.Attempts = append(tier1.Attempts, o.semantic.Name())
		if res := o.trySemantic(ctx, in); res != nil {
			res.Attempts = tier1.Attempts
			return *res
		}
		if ctx.Err() != nil {
			return tier1
		}
	}

	if o.tierAvailable(capability.TierReasoning, req.Policy) && o.judge != nil {
		if ctx.Err() != nil {
			return tier1
		}
		tier1.Attempts = append(tier1.Attempts, "llm")
		res, explanation := o.tryJudge(ctx, req)
		if res != nil {
			res.Attempts = tier1.Attempts
			return *res
		}
		// A conclusive INCORRECT still contributes its reasoning to the
		// rejection.
		tier1.Explanation = explanation
	}

	return tier1
}

func (o *Orchestrator) tierAvailable(tier int, policy answer.StrictnessPolicy) bool {
	return capability.TierAvailable(tier, o.deviceTier, o.flags, policy)
}

// trySemantic contains every Tier-2 failure mode: model not loaded,
// inference error, even a panic inside the backend. All of them resolve
// to "tier unavailable" (nil).
func (o *Orchestrator) trySemantic(ctx context.Context, in *matcher.Input) (res *answer.Result) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("semantic tier panicked", slog.Any("panic", r))
			res = nil
		}
	}()

	res, err := o.semantic.Attempt(ctx, in)
	if err != nil {
		o.logger.Debug("semantic tier unavailable", slog.String("error", err.Error()))
		return nil
	}
	return res
}

// tryJudge contains every Tier-3 failure mode, including malformed model
// output, exactly like trySemantic. A conclusive INCORRECT verdict
// returns a nil result plus the judge's reasoning; the verdict shape
// stays the canonical no-match.
func (o *Orchestrator) tryJudge(ctx context.Context, req *answer.Request) (res *answer.Result, explanation string) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Warn("reasoning tier panicked", slog.Any("panic", r))
			res, explanation = nil, ""
		}
	}()

	v, err := o.judge.Evaluate(ctx, req)
	if err != nil {
		o.logger.Debug("reasoning tier unavailable", slog.String("error", err.Error()))
		return nil, ""
	}
	if !v.Correct {
		return nil, v.Explanation
	}
	return &answer.Result{
		Correct:       true,
		Confidence:    v.Confidence,
		MatchType:     answer.MatchLLM,
		MatchedAnswer: req.Canonical.Primary,
		TierUsed:      answer.TierLLM,
		Explanation:   v.Explanation,
	}, ""
}
