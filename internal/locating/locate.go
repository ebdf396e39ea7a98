// Package locating finds every acceptable occurrence of evidence candidates in a sample.
package locating

import (
	"strings"
	"unicode"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// Kind is how a candidate is searched for.
type Kind int

// Candidate kinds
const (
	// KindWord is a single token with no internal whitespace.
	KindWord Kind = iota
	// KindPhrase contains internal whitespace and is matched literally.
	KindPhrase
	// KindLoose is a heuristic candidate allowed to match by whole words.
	KindLoose
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindPhrase:
		return "phrase"
	default:
		return "loose"
	}
}

// KindOf classifies a candidate.
func KindOf(c types.EvidenceCandidate) Kind {
	text := strings.TrimSpace(c.Text)
	switch {
	case !c.ExactMatch:
		return KindLoose
	case strings.IndexFunc(text, unicode.IsSpace) >= 0:
		return KindPhrase
	default:
		return KindWord
	}
}

// Locate returns matches for every candidate in candidate order. Comparison ignores case
// and an occurrence only counts when it is not glued to a letter or digit on either side,
// so "I" never matches inside "Island". Offsets are rune indexes into text.
func Locate(text string, cands []types.EvidenceCandidate) []types.Match {
	if text == "" || len(cands) == 0 {
		return nil
	}

	runes := []rune(text)
	folded := fold(runes)

	var matches []types.Match
	for _, c := range cands {
		needle := fold([]rune(strings.TrimSpace(c.Text)))
		if len(needle) == 0 {
			continue
		}
		for _, start := range occurrences(folded, needle) {
			end := start + len(needle)
			matches = append(matches, types.Match{
				Start:     start,
				End:       end,
				Score:     c.Score,
				Criterion: c.Criterion,
				Text:      string(runes[start:end]),
				Explicit:  c.Source.Explicit(),

				CriterionIndex: c.CriterionIndex,
			})
		}
	}
	return matches
}

// occurrences scans for needle, advancing one rune past each hit so overlapping
// occurrences are all reported.
func occurrences(haystack, needle []rune) []int {
	var out []int
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if !equalAt(haystack, needle, i) {
			continue
		}
		if bounded(haystack, i, i+len(needle)) {
			out = append(out, i)
		}
	}
	return out
}

func equalAt(haystack, needle []rune, at int) bool {
	for j, r := range needle {
		if haystack[at+j] != r {
			return false
		}
	}
	return true
}

func bounded(runes []rune, start, end int) bool {
	if start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// fold lowercases rune by rune so offsets line up with the original text.
func fold(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}
