package detection

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func detectPunctuation(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		for _, pattern := range lex.regexes.frontedAdverbials {
			if m := pattern.FindString(sentence); m != "" {
				findings = append(findings, Finding{Text: m, Context: sentence, Confidence: 0.9})
				break
			}
		}
	}

	// sentences already credited with a fronted adverbial are dropped by context
	for _, sentence := range d.sentences {
		first, _ := utf8.DecodeRuneInString(sentence)
		if unicode.IsUpper(first) && strings.Contains(sentence, ",") {
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.8})
		}
	}
	return findings
}

func detectCapitalization(d *document, _ *Lexicon, _ string) []Finding {
	var findings []Finding
	for i, t := range d.tokens {
		if t.Word == "I" {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 2, 2), Confidence: 0.9})
		}
	}

	for _, sentence := range d.sentences {
		tokens := tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		if startsUpper(tokens[0].Word) {
			findings = append(findings, Finding{Text: tokens[0].Word, Context: sentence, Confidence: 0.85})
		}
		for i := 1; i < len(tokens); i++ {
			w := tokens[i].Word
			if w != "I" && startsUpper(w) && !startsUpper(tokens[i-1].Word) {
				findings = append(findings, Finding{Text: w, Context: window(tokens, i, 2, 2), Confidence: 0.85})
			}
		}
	}
	return findings
}

func startsUpper(w string) bool {
	r, _ := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(r)
}

func detectSpelling(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for i, t := range d.tokens {
		if lex.has(setMisspelled, t.Key) {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.9})
		}
	}
	return findings
}
