package detection

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	longWordLength         = 8
	attributionRadius      = 30
	newsMarkerReport       = "report"
	newsMarkerNews         = "news"
	newsMarkerDiscovery    = "discovery"
	formalContextSeparator = " (contains formal vocabulary: "
)

var passiveVoice = regexp.MustCompile(`(?i)\b(?:is|are|was|were|be|been|being)\s+\w+ed\b`)

func detectFormalTone(d *document, lex *Lexicon, _ string) []Finding {
	phrases := lex.FormalPhrases
	if strings.Contains(d.lower, newsMarkerNews) || strings.Contains(d.lower, newsMarkerReport) {
		phrases = append(append([]string(nil), phrases...), lex.NewsPhrases...)
	}

	var findings []Finding
	for _, sentence := range d.sentences {
		lower := strings.ReplaceAll(strings.ToLower(sentence), "’", "'")

		for _, phrase := range phrases {
			if containsPhrase(lower, phrase) {
				findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.85})
				break
			}
		}

		if !containsAnyPhrase(lower, lex.Contractions) && containsAnyPhrase(lower, lex.ExpandedNegations) {
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.8})
		}

		if passiveVoice.MatchString(sentence) {
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.8})
		}

		var long []string
		for _, t := range tokenize(sentence) {
			if utf8.RuneCountInString(t.Key) > longWordLength {
				long = append(long, t.Key)
			}
		}
		if len(long) > 0 {
			findings = append(findings, Finding{
				Text:       sentence,
				Context:    fmt.Sprintf("%s%s%s)", sentence, formalContextSeparator, strings.Join(long, ", ")),
				Confidence: 0.75,
			})
		}
	}

	if strings.Contains(d.lower, newsMarkerDiscovery) || strings.Contains(d.lower, newsMarkerReport) {
		for _, loc := range lex.regexes.attribution.FindAllStringIndex(d.text, -1) {
			findings = append(findings, Finding{
				Text:       d.text[loc[0]:loc[1]],
				Context:    around(d.text, loc[0], loc[1], attributionRadius),
				Confidence: 0.9,
			})
		}
	}
	return findings
}

// containsPhrase reports whether phrase occurs in s between non-word characters.
func containsPhrase(s, phrase string) bool {
	return len(phraseLocations(s, phrase)) > 0
}

func containsAnyPhrase(s string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(s, p) {
			return true
		}
	}
	return false
}
