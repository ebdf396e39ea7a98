package detection

import "unicode/utf8"

const (
	minUncommonWordLength = 6
	longSentenceWords     = 10
)

func detectVocabulary(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		tokens := tokenize(sentence)
		uncommon := 0
		for _, t := range tokens {
			if utf8.RuneCountInString(t.Key) >= minUncommonWordLength && !lex.has(setCommonWords, t.Key) {
				uncommon++
			}
		}

		switch {
		case uncommon >= 2:
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.85})
		case uncommon >= 1 && len(tokens) > longSentenceWords:
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.75})
		}
	}
	return findings
}
