package detection

import "strings"

const (
	speechContextRadius = 30
	maxDictionaryQuotes = 3
)

// quoteMarks pairs opening and closing marks. Apostrophe-like marks only count at word
// edges so contractions are not read as quotations.
var quoteMarks = []struct {
	open, close rune
	wordEdge    bool
}{
	{'"', '"', false},
	{'“', '”', false},
	{'\'', '\'', true},
	{'‘', '’', true},
}

// quoteSpan is a quotation including its marks, as byte offsets into the text.
type quoteSpan struct {
	start, end int
}

// quotedSegments finds quotations in text order.
func quotedSegments(text string) []quoteSpan {
	runes := []rune(text)
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = pos

	var spans []quoteSpan
	for i := 0; i < len(runes); i++ {
		mark := -1
		for m, q := range quoteMarks {
			if runes[i] == q.open && (!q.wordEdge || i == 0 || !isWordRune(runes[i-1])) {
				mark = m
				break
			}
		}
		if mark < 0 {
			continue
		}
		q := quoteMarks[mark]
		for j := i + 1; j < len(runes); j++ {
			if runes[j] != q.close || (q.wordEdge && j+1 < len(runes) && isWordRune(runes[j+1])) {
				continue
			}
			if strings.TrimSpace(string(runes[i+1:j])) != "" {
				spans = append(spans, quoteSpan{start: offsets[i], end: offsets[j+1]})
				i = j
			}
			break
		}
	}
	return spans
}

func detectDirectSpeech(d *document, _ *Lexicon, _ string) []Finding {
	var findings []Finding
	for _, q := range quotedSegments(d.text) {
		findings = append(findings, Finding{
			Text:       d.text[q.start:q.end],
			Context:    around(d.text, q.start, q.end, speechContextRadius),
			Confidence: 0.95,
		})
	}
	return findings
}

// speechDictionary is the dictionary-tier direct speech: the first few quotations.
func speechDictionary(d *document) []Finding {
	findings := detectDirectSpeech(d, nil, "")
	if len(findings) > maxDictionaryQuotes {
		findings = findings[:maxDictionaryQuotes]
	}
	return findings
}
