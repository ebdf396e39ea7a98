// Package extraction pulls evidence candidates out of a teacher's free-text justification.
package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// Confidence per justification strategy
const (
	confidenceQuoted         = 0.95
	confidenceListed         = 0.90
	confidenceTermIndicated  = 0.90
	confidenceVerbIndicated  = 0.85
	confidenceBracketed      = 0.80
	confidenceColonIndicated = 0.75
)

// listLeadIns introduce an enumerated list of examples
var listLeadIns = []string{
	"examples include",
	"such as",
	"for example",
	"e.g.",
	"including",
	"like",
}

var listPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(listLeadIns))
	for _, leadIn := range listLeadIns {
		expr := `(?i)\b` + regexp.QuoteMeta(leadIn)
		if r, _ := utf8.DecodeLastRuneInString(leadIn); isWordRune(r) {
			expr += `\b`
		}
		patterns = append(patterns, regexp.MustCompile(expr+`:?\s*([^.]+)`))
	}
	return patterns
}()

var listSeparator = regexp.MustCompile(`,\s*|\s+and\s+`)

// actionVerbs precede the thing the student did
var actionVerbs = []string{"used", "wrote", "included", "added", "applied", "demonstrated", "incorporated"}

var verbPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(actionVerbs))
	for _, verb := range actionVerbs {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+verb+`\s+["'‘“]?([^"'’”.;,]+)`))
	}
	return patterns
}()

var (
	termPattern      = regexp.MustCompile(`(?i)\bthe (?:word|phrase|term|expression)\s+["'‘“]?([^"'’”.]+)`)
	bracketedPattern = regexp.MustCompile(`\(([^)]+)\)`)
	colonPattern     = regexp.MustCompile(`:\s*["'‘“]?([^"'’”.]+)`)
)

// quotePair is an opening and closing quote mark. Apostrophe-like marks only
// count as quotes at word edges so "student's" is not read as an open quote.
type quotePair struct {
	open, close rune
	wordEdge    bool
}

var quotePairs = []quotePair{
	{'\'', '\'', true},
	{'"', '"', false},
	{'‘', '’', true},
	{'“', '”', false},
}

// Extract returns every evidence candidate found in the justification, strongest
// first. Candidates with identical text are reported once.
func Extract(justification string) []types.EvidenceCandidate {
	if strings.TrimSpace(justification) == "" {
		return nil
	}

	var cands []types.EvidenceCandidate
	cands = append(cands, extractQuoted(justification)...)
	cands = append(cands, extractListed(justification)...)
	cands = append(cands, extractVerbIndicated(justification)...)
	cands = append(cands, extractTermIndicated(justification)...)
	cands = append(cands, extractBracketed(justification)...)
	cands = append(cands, extractColonIndicated(justification)...)

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Priority > cands[j].Priority
	})
	return dedupe(cands)
}

func extractQuoted(s string) []types.EvidenceCandidate {
	var cands []types.EvidenceCandidate
	for _, pair := range quotePairs {
		for _, text := range scanQuoted(s, pair) {
			if usable(text) {
				cands = append(cands, candidate(text, types.SourceQuoted))
			}
		}
	}
	return cands
}

// scanQuoted returns the trimmed contents of each quoted segment, pairing marks left to right.
func scanQuoted(s string, pair quotePair) []string {
	runes := []rune(s)
	var out []string

	for i := 0; i < len(runes); i++ {
		if runes[i] != pair.open || (pair.wordEdge && i > 0 && isWordRune(runes[i-1])) {
			continue
		}
		closeAt := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] != pair.close {
				continue
			}
			if pair.wordEdge && j+1 < len(runes) && isWordRune(runes[j+1]) {
				continue
			}
			closeAt = j
			break
		}
		if closeAt < 0 {
			continue
		}
		if text := strings.TrimSpace(string(runes[i+1 : closeAt])); text != "" {
			out = append(out, text)
		}
		i = closeAt
	}
	return out
}

func extractListed(s string) []types.EvidenceCandidate {
	var cands []types.EvidenceCandidate
	for _, pattern := range listPatterns {
		m := pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		for _, item := range listSeparator.Split(m[1], -1) {
			item = stripQuotes(item)
			if usable(item) {
				cands = append(cands, candidate(item, types.SourceListed))
			}
		}
	}
	return cands
}

func extractVerbIndicated(s string) []types.EvidenceCandidate {
	var cands []types.EvidenceCandidate
	for _, pattern := range verbPatterns {
		if m := pattern.FindStringSubmatch(s); m != nil {
			if text := strings.TrimSpace(m[1]); usable(text) {
				cands = append(cands, candidate(text, types.SourceVerbIndicated))
			}
		}
	}
	return cands
}

func extractTermIndicated(s string) []types.EvidenceCandidate {
	m := termPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	text := strings.TrimSpace(m[1])
	if !usable(text) {
		return nil
	}
	return []types.EvidenceCandidate{candidate(text, types.SourceTermIndicated)}
}

func extractBracketed(s string) []types.EvidenceCandidate {
	var cands []types.EvidenceCandidate
	for _, m := range bracketedPattern.FindAllStringSubmatch(s, -1) {
		if text := strings.TrimSpace(m[1]); usable(text) {
			cands = append(cands, candidate(text, types.SourceBracketed))
		}
	}
	return cands
}

// extractColonIndicated skips colons that close a list lead-in such as "such as:",
// since those are already covered by extractListed.
func extractColonIndicated(s string) []types.EvidenceCandidate {
	var cands []types.EvidenceCandidate
	for _, loc := range colonPattern.FindAllStringSubmatchIndex(s, -1) {
		if followsLeadIn(s[:loc[0]]) {
			continue
		}
		if text := strings.TrimSpace(s[loc[2]:loc[3]]); usable(text) {
			cands = append(cands, candidate(text, types.SourceColonIndicated))
		}
	}
	return cands
}

func followsLeadIn(prefix string) bool {
	prefix = strings.ToLower(strings.TrimRightFunc(prefix, unicode.IsSpace))
	for _, leadIn := range listLeadIns {
		if !strings.HasSuffix(prefix, leadIn) {
			continue
		}
		before, _ := utf8.DecodeLastRuneInString(prefix[:len(prefix)-len(leadIn)])
		if before == utf8.RuneError || !isWordRune(before) {
			return true
		}
	}
	return false
}

// usable rejects single characters such as enumeration markers "(a)" or scores.
func usable(text string) bool {
	return utf8.RuneCountInString(text) > 1
}

func candidate(text string, source types.EvidenceSource) types.EvidenceCandidate {
	c := types.EvidenceCandidate{Text: text, Source: source, ExactMatch: true}
	switch source {
	case types.SourceQuoted:
		c.Priority, c.Confidence = types.PriorityQuoted, confidenceQuoted
	case types.SourceListed:
		c.Priority, c.Confidence = types.PriorityListed, confidenceListed
	case types.SourceTermIndicated:
		c.Priority, c.Confidence = types.PriorityTermIndicated, confidenceTermIndicated
	case types.SourceVerbIndicated:
		c.Priority, c.Confidence = types.PriorityVerbIndicated, confidenceVerbIndicated
	case types.SourceBracketed:
		c.Priority, c.Confidence = types.PriorityBracketed, confidenceBracketed
	case types.SourceColonIndicated:
		c.Priority, c.Confidence = types.PriorityColonIndicated, confidenceColonIndicated
	}
	return c
}

func stripQuotes(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`"'‘’“”`, r)
	})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// dedupe keeps the first candidate for each trimmed text
func dedupe(cands []types.EvidenceCandidate) []types.EvidenceCandidate {
	if len(cands) == 0 {
		return cands
	}

	seen := make(map[string]bool, len(cands))
	out := make([]types.EvidenceCandidate, 0, len(cands))
	for _, c := range cands {
		key := strings.TrimSpace(c.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
