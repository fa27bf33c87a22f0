// Package capability resolves device hardware tier, admin feature flags,
// and the session's strictness policy into the effective maximum matching
// tier. The result is computed once per session and treated as immutable
// by the orchestrator.
package capability

import (
	"github.com/quizbee/adjudicator/internal/answer"
)

// Tier bounds for validation stages. Tier 1 is always available; tiers 2
// and 3 need hardware headroom and an admin flag.
const (
	TierAlgorithmic = 1
	TierSemantic    = 2
	TierReasoning   = 3
)

// Probe reports what the device can run. Concrete implementations live
// with the platform integration (OS memory APIs, chip lookup tables) and
// are injected at construction time.
type Probe interface {
	// DeviceTier returns the hardware capability tier, 1-3.
	DeviceTier() int
}

// StaticProbe is a Probe with a fixed answer, for tests and for callers
// that already computed the tier elsewhere.
type StaticProbe int

func (p StaticProbe) DeviceTier() int { return int(p) }

// MemoryProbe maps available memory to a device tier using the footprints
// of the optional models: ~200MB for the embedding model, ~2GB for the
// reasoning model, each with headroom for inference.
type MemoryProbe struct {
	// AvailableBytes is the memory the host reports as available for
	// model loading. Supplied by the platform collaborator.
	AvailableBytes uint64
}

const (
	semanticMemoryFloor  = 512 << 20 // embedding model + working set
	reasoningMemoryFloor = 4 << 30   // reasoning model + working set
)

func (p MemoryProbe) DeviceTier() int {
	switch {
	case p.AvailableBytes >= reasoningMemoryFloor:
		return TierReasoning
	case p.AvailableBytes >= semanticMemoryFloor:
		return TierSemantic
	default:
		return TierAlgorithmic
	}
}

// FeatureFlags is the admin-controlled configuration snapshot enabling
// each optional tier, independent of device capability. It is fetched by
// an external server-configuration collaborator and passed in read-only.
type FeatureFlags struct {
	SemanticEnabled  bool
	ReasoningEnabled bool
}

// Enabled reports whether the flag for the given tier is on. Tier 1 has
// no flag; it is always on.
func (f FeatureFlags) Enabled(tier int) bool {
	switch tier {
	case TierSemantic:
		return f.SemanticEnabled
	case TierReasoning:
		return f.ReasoningEnabled
	default:
		return tier == TierAlgorithmic
	}
}

// TierAvailable reports whether one specific tier may run for a session:
// the device supports it, the policy permits it, and its own flag is on.
// Flags gate tiers independently, so disabling the semantic tier does
// not block the reasoning tier; the cascade simply skips the disabled
// stage, the same way it skips a tier whose model is not loaded.
func TierAvailable(tier, deviceTier int, flags FeatureFlags, policy answer.StrictnessPolicy) bool {
	if tier > deviceTier || tier > policy.MaxTier() {
		return false
	}
	return flags.Enabled(tier)
}

// EffectiveMaxTier resolves device tier, feature flags, and policy into
// the highest tier available to this session. It is a pure function over
// inputs that are fixed per session: the orchestrator never re-evaluates
// it mid-chain.
func EffectiveMaxTier(deviceTier int, flags FeatureFlags, policy answer.StrictnessPolicy) int {
	effective := TierAlgorithmic
	for tier := TierSemantic; tier <= TierReasoning; tier++ {
		if TierAvailable(tier, deviceTier, flags, policy) {
			effective = tier
		}
	}
	return effective
}
