package detection

import (
	"strings"
	"unicode/utf8"
)

func detectPastTense(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for i, t := range d.tokens {
		if isRegularPast(t.Key) {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.85})
		}
	}
	for i, t := range d.tokens {
		if lex.has(setIrregularPast, t.Key) {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.9})
		}
	}
	return findings
}

func isRegularPast(key string) bool {
	return strings.HasSuffix(key, "ed") && utf8.RuneCountInString(key) > 3 && isPlainWord(key)
}

func detectThirdPerson(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for i, t := range d.tokens {
		if lex.has(setThirdPerson, t.Key) {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 2, 2), Confidence: 0.9})
		}
	}

	for i, t := range d.tokens {
		if i == 0 || !strings.HasSuffix(t.Key, "s") || utf8.RuneCountInString(t.Key) < 3 || !isPlainWord(t.Key) {
			continue
		}
		prev := d.tokens[i-1].Key
		if lex.has(setThirdPerson, prev) || lex.has(setSubjectDet, prev) {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.8})
		}
	}
	return findings
}

// isPlainWord reports whether key is made only of letters, i.e. no digits or inner punctuation.
func isPlainWord(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !isWordRune(r) || (r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
