package answer

import "fmt"

// StrictnessPolicy controls which matching tiers are legal for a session.
// It is derived from the active competition region's rules by the caller.
type StrictnessPolicy string

const (
	// PolicyStrict permits only exact, acceptable, and baseline-fuzzy
	// matching, reflecting formal competition rules.
	PolicyStrict StrictnessPolicy = "strict"

	// PolicyStandard additionally permits synonym, phonetic, n-gram,
	// token, and linguistic matching.
	PolicyStandard StrictnessPolicy = "standard"

	// PolicyLenient additionally permits semantic and LLM matching,
	// subject to device capability and feature flags.
	PolicyLenient StrictnessPolicy = "lenient"
)

// ParsePolicy converts a string to a StrictnessPolicy.
func ParsePolicy(s string) (StrictnessPolicy, error) {
	switch StrictnessPolicy(s) {
	case PolicyStrict, PolicyStandard, PolicyLenient:
		return StrictnessPolicy(s), nil
	}
	return "", fmt.Errorf("unknown strictness policy: %q", s)
}

// MaxTier returns the highest tier the policy alone permits, before
// device capability and feature flags are applied.
func (p StrictnessPolicy) MaxTier() int {
	if p == PolicyLenient {
		return 3
	}
	return 1
}
