package matcher

import (
	"strings"

	"github.com/quizbee/adjudicator/internal/answer"
)

// PhoneticMatcher accepts a response that sounds like a candidate. Both
// strings are encoded with a double-metaphone-style algorithm that yields
// a primary and a secondary code; any equal code pair is a match. The
// reported confidence is a fixed tunable constant.
type PhoneticMatcher struct {
	confidence float64
}

func NewPhoneticMatcher(th Thresholds) *PhoneticMatcher {
	return &PhoneticMatcher{confidence: th.PhoneticConfidence}
}

func (m *PhoneticMatcher) Name() string { return "phonetic" }

func (m *PhoneticMatcher) Attempt(in *Input) *answer.Result {
	if in.Response == "" {
		return nil
	}
	rp, rs := MetaphoneCodes(in.Response)
	if rp == "" {
		return nil
	}
	for _, c := range in.Candidates {
		cp, cs := MetaphoneCodes(c.Norm)
		if cp == "" {
			continue
		}
		if rp == cp || rp == cs || rs == cp || (rs != "" && rs == cs) {
			return &answer.Result{
				Correct:       true,
				Confidence:    m.confidence,
				MatchType:     answer.MatchPhonetic,
				MatchedAnswer: c.Raw,
				TierUsed:      answer.TierAlgorithmic,
			}
		}
	}
	return nil
}

// MetaphoneCodes encodes a normalized phrase into primary and secondary
// phonetic codes, one word at a time, joined by spaces. The secondary code
// equals the primary unless an ambiguous rule (CH, soft G, TH) produced an
// alternate reading.
func MetaphoneCodes(phrase string) (primary, secondary string) {
	var ps, ss []string
	for _, w := range strings.Fields(phrase) {
		p, s := metaphoneWord(w)
		if p == "" {
			continue
		}
		ps = append(ps, p)
		ss = append(ss, s)
	}
	return strings.Join(ps, " "), strings.Join(ss, " ")
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// metaphoneWord encodes a single lowercase ASCII word. Digits pass through
// unchanged so "b2" and "b 2" stay distinct from "b".
func metaphoneWord(w string) (string, string) {
	if w == "" {
		return "", ""
	}

	var p, s strings.Builder
	emit := func(c string) { p.WriteString(c); s.WriteString(c) }
	emitSplit := func(pc, sc string) { p.WriteString(pc); s.WriteString(sc) }

	i := 0
	// Silent leading clusters.
	switch {
	case strings.HasPrefix(w, "kn"), strings.HasPrefix(w, "gn"),
		strings.HasPrefix(w, "pn"), strings.HasPrefix(w, "wr"),
		strings.HasPrefix(w, "ps"):
		i = 1
	case w[0] == 'x':
		emit("S")
		i = 1
	}

	for ; i < len(w); i++ {
		c := w[i]
		var next, prev byte
		if i+1 < len(w) {
			next = w[i+1]
		}
		if i > 0 {
			prev = w[i-1]
		}

		// Collapse doubled consonants ("lesson" encodes one S).
		if c == prev && !isVowel(c) && c != 'c' {
			continue
		}

		switch c {
		case 'a', 'e', 'i', 'o', 'u':
			// Vowels carry information only at the start of a word.
			if i == 0 {
				emit("A")
			}
		case 'b':
			// Terminal MB is silent ("lamb").
			if !(i == len(w)-1 && prev == 'm') {
				emit("P")
			}
		case 'c':
			switch {
			case next == 'h':
				// CH is usually "ch" but "k" in words like "chorus";
				// keep both readings.
				emitSplit("X", "K")
				i++
			case next == 'i' && i+2 < len(w) && w[i+2] == 'a':
				emit("X") // -cia-
			case next == 'e' || next == 'i' || next == 'y':
				emit("S")
			case next == 'k':
				emit("K")
				i++
			default:
				emit("K")
			}
		case 'd':
			if next == 'g' && i+2 < len(w) && (w[i+2] == 'e' || w[i+2] == 'i' || w[i+2] == 'y') {
				emit("J") // -dge-
				i += 2
			} else {
				emit("T")
			}
		case 'f':
			emit("F")
		case 'g':
			switch {
			case next == 'h':
				// GH: hard at word start ("ghost"), otherwise silent
				// ("night", "through").
				if i == 0 {
					emit("K")
				}
				i++
			case next == 'n':
				// Silent before N ("sign", "gnome" handled at start).
				emit("N")
				i++
			case next == 'e' || next == 'i' || next == 'y':
				emitSplit("J", "K")
			default:
				emit("K")
			}
		case 'h':
			// H is audible only between a consonant boundary and a vowel.
			if i == 0 && isVowel(next) {
				emit("H")
			} else if !isVowel(prev) && isVowel(next) {
				emit("H")
			}
		case 'j':
			emit("J")
		case 'k':
			emit("K")
		case 'l':
			emit("L")
		case 'm':
			emit("M")
		case 'n':
			emit("N")
		case 'p':
			if next == 'h' {
				emit("F")
				i++
			} else {
				emit("P")
			}
		case 'q':
			emit("K")
		case 'r':
			emit("R")
		case 's':
			switch {
			case next == 'h':
				emit("X")
				i++
			case next == 'i' && i+2 < len(w) && (w[i+2] == 'o' || w[i+2] == 'a'):
				emitSplit("X", "S") // -sio-, -sia-
			case next == 'c' && i+2 < len(w) && w[i+2] == 'h':
				emitSplit("X", "SK") // "schmidt" vs "school"
				i += 2
			default:
				emit("S")
			}
		case 't':
			switch {
			case next == 'h':
				emitSplit("0", "T")
				i++
			case next == 'i' && i+2 < len(w) && (w[i+2] == 'o' || w[i+2] == 'a'):
				emit("X") // -tio-, -tia-
			default:
				emit("T")
			}
		case 'v':
			emit("F")
		case 'w':
			if isVowel(next) {
				emit("W")
			}
		case 'x':
			emit("KS")
		case 'y':
			if isVowel(next) {
				emit("Y")
			}
		case 'z':
			emit("S")
		default:
			// Digits and anything else pass through.
			emit(strings.ToUpper(string(c)))
		}
	}

	pc, sc := p.String(), s.String()
	if sc == pc {
		sc = ""
	}
	return pc, sc
}
