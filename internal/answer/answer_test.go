package answer

import "testing"

func TestNewRequestValidation(t *testing.T) {
	canonical := &CanonicalAnswer{Primary: "Jupiter"}

	req, err := NewRequest("jupiter", canonical, PolicyStandard)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if req.ID == "" {
		t.Error("request has no ID")
	}

	other, err := NewRequest("jupiter", canonical, PolicyStandard)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if other.ID == req.ID {
		t.Error("request IDs are not unique")
	}

	if _, err := NewRequest("jupiter", nil, PolicyStandard); err == nil {
		t.Error("nil canonical answer accepted")
	}
	if _, err := NewRequest("jupiter", &CanonicalAnswer{}, PolicyStandard); err == nil {
		t.Error("empty primary answer accepted")
	}
	if _, err := NewRequest("jupiter", canonical, "casual"); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"strict", "standard", "lenient"} {
		p, err := ParsePolicy(s)
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", s, err)
		}
		if string(p) != s {
			t.Errorf("ParsePolicy(%q) = %q", s, p)
		}
	}
	if _, err := ParsePolicy("relaxed"); err == nil {
		t.Error("unknown policy parsed")
	}
}

func TestPolicyMaxTier(t *testing.T) {
	if got := PolicyLenient.MaxTier(); got != 3 {
		t.Errorf("lenient max tier = %d, want 3", got)
	}
	if got := PolicyStandard.MaxTier(); got != 1 {
		t.Errorf("standard max tier = %d, want 1", got)
	}
	if got := PolicyStrict.MaxTier(); got != 1 {
		t.Errorf("strict max tier = %d, want 1", got)
	}
}

func TestNoMatch(t *testing.T) {
	res := NoMatch()
	if res.Correct || res.Confidence != 0 || res.MatchType != MatchNone {
		t.Errorf("NoMatch() = %+v", res)
	}
}
