package detection

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const modalContextRadius = 15

// pronoun subtypes selectable by naming them in the criterion
var pronounSubtypes = []string{"personal", "possessive", "reflexive", "relative", "demonstrative", "indefinite"}

var adverbPositions = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\w+ly)\s+(?:\w+ed|s|\w+ing)\b`),
	regexp.MustCompile(`(?i)\b(?:is|are|was|were|have|has|had)\s+(\w+ly)\b`),
	regexp.MustCompile(`(?i)^(\w+ly),`),
}

func detectPronouns(d *document, lex *Lexicon, name string) []Finding {
	target := toSet(flatten(lex.Pronouns))
	lowerName := strings.ToLower(name)
	for _, subtype := range pronounSubtypes {
		if strings.Contains(lowerName, subtype) {
			target = toSet(lex.Pronouns[subtype])
			break
		}
	}

	var findings []Finding
	for i, t := range d.tokens {
		if target[t.Key] {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.9})
		}
	}
	// multi-word pronouns such as "no one"
	for p := range target {
		if !strings.Contains(p, " ") {
			continue
		}
		for _, loc := range phraseLocations(d.text, p) {
			findings = append(findings, Finding{
				Text:       d.text[loc : loc+len(p)],
				Context:    around(d.text, loc, loc+len(p), modalContextRadius),
				Confidence: 0.9,
			})
		}
	}
	return findings
}

func detectAdjectives(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		tokens := tokenize(sentence)
		for i, t := range tokens {
			if utf8.RuneCountInString(t.Key) <= 2 || !isPlainWord(t.Key) {
				continue
			}

			confidence := 0.0
			switch {
			case lex.has(setAdjectives, t.Key):
				confidence = 0.9
			case hasAdjectiveSuffix(t.Key, lex.AdjectiveSuffixes):
				confidence = 0.7
			case i > 0 && i < len(tokens)-1 && lex.has(setAdjDeterminers, tokens[i-1].Key) && !lex.has(setLinkingVerbs, t.Key):
				confidence = 0.6
			}

			if confidence > 0 {
				findings = append(findings, Finding{Text: t.Word, Context: window(tokens, i, 2, 2), Confidence: confidence})
			}
		}
	}
	return findings
}

func hasAdjectiveSuffix(word string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+1 {
			return true
		}
	}
	return false
}

func detectAdverbs(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		tokens := tokenize(sentence)
		for i, t := range tokens {
			if utf8.RuneCountInString(t.Key) <= 2 || !isPlainWord(t.Key) {
				continue
			}

			confidence := 0.0
			switch {
			case strings.HasSuffix(t.Key, "ly") && utf8.RuneCountInString(t.Key) > 3:
				confidence = 0.8
			case lex.has(setIrregularAdverbs, t.Key):
				confidence = 0.9
			case i > 0 && i < len(tokens)-1 && lex.has(setAdverbAux, tokens[i-1].Key):
				confidence = 0.6
			case i > 0 && i < len(tokens)-1 && endsLikeVerb(tokens[i+1].Key):
				confidence = 0.5
			}

			if confidence > 0 {
				findings = append(findings, Finding{Text: t.Word, Context: window(tokens, i, 2, 2), Confidence: confidence})
			}
		}

		for _, pattern := range adverbPositions {
			if m := pattern.FindStringSubmatch(sentence); m != nil {
				findings = append(findings, Finding{Text: m[1], Context: sentence, Confidence: 0.7})
			}
		}
	}
	return findings
}

func endsLikeVerb(key string) bool {
	return strings.HasSuffix(key, "ed") || strings.HasSuffix(key, "ing") || strings.HasSuffix(key, "s")
}

func detectModalVerbs(d *document, lex *Lexicon, _ string) []Finding {
	modals := flatten(lex.Modals)

	var findings []Finding
	for _, sentence := range d.sentences {
		for _, modal := range modals {
			locs := phraseLocations(sentence, modal)
			if len(locs) == 0 {
				continue
			}
			context := sentence
			if !strings.Contains(modal, " ") {
				context = strings.TrimSpace(around(sentence, locs[0], locs[0]+len(modal), modalContextRadius))
			}
			findings = append(findings, Finding{Text: modal, Context: context, Confidence: 0.9})
		}
	}
	return findings
}

func detectPrepositions(d *document, lex *Lexicon, _ string) []Finding {
	preps := flatten(lex.Prepositions)
	single := make(map[string]bool, len(preps))
	var multi [][]string
	for _, p := range preps {
		if strings.Contains(p, " ") {
			multi = append(multi, strings.Fields(p))
		} else {
			single[p] = true
		}
	}

	var findings []Finding
	for i, t := range d.tokens {
		if single[t.Key] {
			findings = append(findings, Finding{Text: t.Word, Context: window(d.tokens, i, 3, 3), Confidence: 0.9})
		}
		for _, words := range multi {
			if tokensMatch(d.tokens[i:], words) {
				findings = append(findings, Finding{
					Text:       joinWords(d.tokens[i : i+len(words)]),
					Context:    window(d.tokens, i, 2, len(words)+1),
					Confidence: 0.9,
				})
			}
		}
	}
	return findings
}

func detectVerbs(d *document, lex *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, sentence := range d.sentences {
		tokens := tokenize(sentence)
		for i, t := range tokens {
			key := t.Key
			if utf8.RuneCountInString(key) <= 2 || !isPlainWord(key) || lex.has(setAuxiliaryVerbs, key) {
				continue
			}

			confidence := verbShapeConfidence(key, lex)
			if confidence == 0 && i > 0 {
				prev := tokens[i-1].Key
				switch {
				case lex.has(setSubjectPronouns, prev):
					confidence = 0.6
				case lex.has(setVerbModals, prev):
					confidence = 0.8
				case prev == "to" && !strings.HasSuffix(key, "ing"):
					confidence = 0.8
				}
			}

			if confidence > 0 {
				findings = append(findings, Finding{Text: t.Word, Context: window(tokens, i, 2, 2), Confidence: confidence})
			}
		}
	}
	return findings
}

func verbShapeConfidence(key string, lex *Lexicon) float64 {
	n := utf8.RuneCountInString(key)
	switch {
	case lex.has(setStrongVerbs, key):
		return 0.9
	case strings.HasSuffix(key, "ed") && n > 3:
		return 0.85
	case strings.HasSuffix(key, "ing") && n > 4:
		return 0.85
	case strings.HasSuffix(key, "s") && n > 3 && !hasAnySuffix(key, "ss", "us", "is", "as", "os"):
		return 0.7
	case strings.HasSuffix(key, "es") && n > 4:
		return 0.7
	}
	return 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// phraseLocations returns byte offsets of whole-word, case-insensitive occurrences of
// phrase in s. Offsets index s itself, so they stay valid for the original casing.
func phraseLocations(s, phrase string) []int {
	if phrase == "" {
		return nil
	}
	var locs []int
	for i := 0; i+len(phrase) <= len(s); i++ {
		if !isRuneStart(s[i]) || !strings.EqualFold(s[i:i+len(phrase)], phrase) {
			continue
		}
		end := i + len(phrase)
		if !boundaryBefore(s, i) || !boundaryAfter(s, end) {
			continue
		}
		locs = append(locs, i)
		i = end - 1
	}
	return locs
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func tokensMatch(tokens []token, words []string) bool {
	if len(tokens) < len(words) {
		return false
	}
	for i, w := range words {
		if tokens[i].Key != w {
			return false
		}
	}
	return true
}

func joinWords(tokens []token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Word)
	}
	return strings.Join(parts, " ")
}
