package matcher

import (
	"testing"

	"github.com/quizbee/adjudicator/internal/answer"
)

func TestMetaphoneCodes_SoundAlikes(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"stephen", "steven"},
		{"philip", "filip"},
		{"night", "nite"},
		{"smith", "smyth"},
		{"wright", "rite"},
		{"catherine", "katherine"},
	}
	for _, pr := range pairs {
		ap, as := MetaphoneCodes(pr.a)
		bp, bs := MetaphoneCodes(pr.b)
		if ap != bp && ap != bs && as != bp && (as == "" || as != bs) {
			t.Errorf("%q (%s/%s) and %q (%s/%s) should share a code",
				pr.a, ap, as, pr.b, bp, bs)
		}
	}
}

func TestMetaphoneCodes_Distinct(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"jupiter", "saturn"},
		{"paris", "london"},
		{"oxygen", "nitrogen"},
	}
	for _, pr := range pairs {
		ap, _ := MetaphoneCodes(pr.a)
		bp, _ := MetaphoneCodes(pr.b)
		if ap == bp {
			t.Errorf("%q and %q both encode to %s", pr.a, pr.b, ap)
		}
	}
}

func TestMetaphoneCodes_SecondaryReading(t *testing.T) {
	// CH has two readings; the secondary code must differ.
	p, s := MetaphoneCodes("chorus")
	if s == "" {
		t.Fatalf("expected a secondary code for chorus, primary %s", p)
	}
	if p == s {
		t.Error("secondary code should differ from primary")
	}
}

func TestMetaphoneCodes_MultiWord(t *testing.T) {
	p1, _ := MetaphoneCodes("theodore roosevelt")
	p2, _ := MetaphoneCodes("theodore rosevelt")
	if p1 != p2 {
		t.Errorf("multi-word sound-alikes differ: %s vs %s", p1, p2)
	}
}

func TestPhoneticMatcher(t *testing.T) {
	m := NewPhoneticMatcher(DefaultThresholds())

	res := m.Attempt(makeInput("Filip", "Philip"))
	if res == nil {
		t.Fatal("expected phonetic match")
	}
	if res.MatchType != answer.MatchPhonetic {
		t.Errorf("match type = %q", res.MatchType)
	}
	if res.Confidence != DefaultThresholds().PhoneticConfidence {
		t.Errorf("confidence = %v, want the configured constant", res.Confidence)
	}

	if res := m.Attempt(makeInput("Saturn", "Jupiter")); res != nil {
		t.Errorf("unexpected phonetic match: %+v", res)
	}
	if res := m.Attempt(makeInput("", "Jupiter")); res != nil {
		t.Errorf("empty response matched: %+v", res)
	}
}
