package capability

import (
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
)

func TestEffectiveMaxTier(t *testing.T) {
	allOn := FeatureFlags{SemanticEnabled: true, ReasoningEnabled: true}

	cases := []struct {
		name       string
		deviceTier int
		flags      FeatureFlags
		policy     answer.StrictnessPolicy
		want       int
	}{
		{"strict caps everything", 3, allOn, answer.PolicyStrict, 1},
		{"standard caps everything", 3, allOn, answer.PolicyStandard, 1},
		{"lenient full device full flags", 3, allOn, answer.PolicyLenient, 3},
		{"device limits below policy", 2, allOn, answer.PolicyLenient, 2},
		{"low-end device", 1, allOn, answer.PolicyLenient, 1},
		{"semantic flag off leaves reasoning on", 3, FeatureFlags{ReasoningEnabled: true}, answer.PolicyLenient, 3},
		{"reasoning flag off caps at tier 2", 3, FeatureFlags{SemanticEnabled: true}, answer.PolicyLenient, 2},
		{"no flags", 3, FeatureFlags{}, answer.PolicyLenient, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := EffectiveMaxTier(c.deviceTier, c.flags, c.policy)
			if got != c.want {
				t.Errorf("EffectiveMaxTier(%d, %+v, %s) = %d, want %d",
					c.deviceTier, c.flags, c.policy, got, c.want)
			}
		})
	}
}

func TestTierAvailableGatesFlagsIndependently(t *testing.T) {
	reasoningOnly := FeatureFlags{ReasoningEnabled: true}

	if TierAvailable(TierSemantic, 3, reasoningOnly, answer.PolicyLenient) {
		t.Error("semantic tier available with its flag off")
	}
	if !TierAvailable(TierReasoning, 3, reasoningOnly, answer.PolicyLenient) {
		t.Error("reasoning tier blocked by the semantic flag")
	}
	if TierAvailable(TierReasoning, 2, reasoningOnly, answer.PolicyLenient) {
		t.Error("reasoning tier available beyond the device tier")
	}
	if TierAvailable(TierSemantic, 3, FeatureFlags{SemanticEnabled: true}, answer.PolicyStandard) {
		t.Error("semantic tier available beyond the policy's max tier")
	}
	if !TierAvailable(TierAlgorithmic, 1, FeatureFlags{}, answer.PolicyStrict) {
		t.Error("tier 1 must always be available")
	}
}

func TestMemoryProbe(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  int
	}{
		{256 << 20, TierAlgorithmic},
		{1 << 30, TierSemantic},
		{8 << 30, TierReasoning},
	}
	for _, c := range cases {
		if got := (MemoryProbe{AvailableBytes: c.bytes}).DeviceTier(); got != c.want {
			t.Errorf("MemoryProbe(%d bytes) = tier %d, want %d", c.bytes, got, c.want)
		}
	}
}

func TestStaticProbe(t *testing.T) {
	if StaticProbe(2).DeviceTier() != 2 {
		t.Error("StaticProbe should return its own value")
	}
}
