package detection

import (
	"regexp"
	"strings"
)

const (
	minTopicSentenceWords = 5
	paragraphContextRunes = 100
)

var listPattern = regexp.MustCompile(`,.*,.*\b(?:and|or)\b`)

func detectParagraphs(d *document, _ *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, paragraph := range d.paragraphs {
		sentences := splitTrimmed(sentenceSeparator, paragraph)
		if len(sentences) == 0 {
			continue
		}
		topic := sentences[0]
		if len(strings.Fields(topic)) < minTopicSentenceWords {
			continue
		}
		context := paragraph
		if r := []rune(paragraph); len(r) > paragraphContextRunes {
			context = string(r[:paragraphContextRunes])
		}
		findings = append(findings, Finding{Text: topic, Context: context + "...", Confidence: 0.75})
	}
	return findings
}

func detectComplexSentences(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		lower := strings.ToLower(sentence)

		isComplex := containsAnyPhrase(lower, lex.Subordinators)
		if !isComplex && strings.Contains(sentence, ",") {
			clauses := strings.Split(sentence, ",")
			isComplex = hasSubjectVerb(clauses[0], lex) && hasSubjectVerb(clauses[1], lex)
		}
		if !isComplex {
			isComplex = containsAnyPhrase(lower, lex.ComplexRelatives)
		}

		if isComplex {
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.85})
		}
	}
	return findings
}

// hasSubjectVerb is a crude clause test: two adjacent words, neither a preposition.
func hasSubjectVerb(clause string, lex *Lexicon) bool {
	words := strings.Fields(clause)
	for i := 0; i+1 < len(words); i++ {
		if !lex.has(setClausePreps, strings.ToLower(words[i])) && !lex.has(setClausePreps, strings.ToLower(words[i+1])) {
			return true
		}
	}
	return false
}

func detectCoordinatingConjunctions(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		lower := strings.ToLower(sentence)
		for _, conj := range lex.CoordinatingConjunctions {
			if !containsPhrase(lower, conj) {
				continue
			}

			confidence := 0.5
			switch {
			case lex.regexes.commaConjunction[conj].MatchString(lower):
				confidence = 0.9
			case listPattern.MatchString(lower):
				confidence = 0.8
			case conj != "and" && conj != "or":
				confidence = 0.7
			}

			if confidence > 0.5 {
				findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: confidence})
			}
		}
	}
	return findings
}

func detectCompoundSentences(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		for _, conj := range lex.CoordinatingConjunctions {
			if lex.regexes.commaConjunction[conj].MatchString(sentence) {
				findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: 0.85})
				break
			}
		}
	}
	return findings
}

func detectRelativeClauses(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		lower := strings.ToLower(sentence)
		for _, pronoun := range lex.RelativePronouns {
			if !containsPhrase(lower, pronoun) {
				continue
			}
			confidence := 0.7
			if pronoun != "that" {
				confidence = 0.85
			}
			if strings.Contains(lower, ", "+pronoun+" ") {
				confidence = 0.9
			}
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: confidence})
			break
		}
	}
	return findings
}
