// Package normalize canonicalizes contestant and canonical answer text so
// the matchers compare like with like: lowercase, accents folded to ASCII,
// punctuation removed, leading articles stripped, whitespace collapsed.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, recomposes.
// "Élodie" -> "Elodie", "São Paulo" -> "Sao Paulo".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// leadingArticles are stripped from the front of an answer. "The Nile" and
// "Nile" must normalize identically.
var leadingArticles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// Normalize canonicalizes raw answer text. It is idempotent: applying it
// to its own output returns the same string. Empty input yields "".
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lowercased input so matching still proceeds.
		folded = strings.ToLower(s)
	}

	// Punctuation and symbols become spaces so "mother-in-law" keeps its
	// word boundaries, then runs of whitespace collapse to one space.
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	for len(words) > 1 && leadingArticles[words[0]] {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

// Words returns the normalized text split into words. Returns nil for
// input that normalizes to the empty string.
func Words(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}
