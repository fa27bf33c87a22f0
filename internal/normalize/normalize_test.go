package normalize

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mississippi", "mississippi"},
		{"  The Great Gatsby  ", "great gatsby"},
		{"A Tale of Two Cities", "tale of two cities"},
		{"An apple", "apple"},
		{"São Paulo", "sao paulo"},
		{"Élodie", "elodie"},
		{"mother-in-law", "mother in law"},
		{"E=mc^2", "e mc 2"},
		{"  ", ""},
		{"", ""},
		{"THE", "the"},
		{"the the answer", "answer"},
		{"O'Brien", "o brien"},
	}
	for _, c := range cases {
		got := Normalize(c.in)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"The Quick, Brown Fox!",
		"  Ångström  ",
		"an Égalité",
		"", "a", "the the x",
		"Theodore Roosevelt",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("The United States of America")
	want := []string{"united", "states", "of", "america"}
	if len(got) != len(want) {
		t.Fatalf("Words returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
	if Words("   ") != nil {
		t.Error("Words of blank input should be nil")
	}
}
