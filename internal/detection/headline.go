package detection

import (
	"regexp"
	"strings"
)

const (
	maxHeadlineWords  = 15
	minHeadlineLength = 3
)

var (
	titleSeparator  = regexp.MustCompile(`:|\s-\s|\s–\s`)
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+`)
)

func detectHeadline(d *document, _ *Lexicon, _ string) []Finding {
	first := firstLine(d)
	if first == "" {
		return nil
	}

	var findings []Finding
	if titleSeparator.MatchString(first) {
		findings = append(findings, Finding{Text: first, Context: first, Confidence: 0.95})
	} else {
		sentence := first
		if parts := splitTrimmed(sentenceSeparator, first); len(parts) > 0 {
			sentence = parts[0]
		}
		if len(strings.Fields(sentence)) <= maxHeadlineWords {
			confidence := 0.75
			if len(capitalizedWord.FindAllString(sentence, -1)) >= 2 {
				confidence = 0.9
			}
			findings = append(findings, Finding{Text: sentence, Context: sentence, Confidence: confidence})
		}
		if len(d.paragraphs) >= 2 {
			findings = append(findings, Finding{Text: d.paragraphs[0], Context: d.paragraphs[0], Confidence: 0.85})
		}
	}

	if len(findings) == 0 {
		findings = append(findings, Finding{Text: first, Context: first, Confidence: 0.7})
	}
	return findings
}

// firstLine is the first non-blank line, trimmed.
func firstLine(d *document) string {
	for _, line := range d.lines {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// headlineDictionary is the dictionary-tier headline: the first line when it is long enough.
func headlineDictionary(d *document) []Finding {
	first := firstLine(d)
	if len([]rune(first)) <= minHeadlineLength {
		return nil
	}
	return []Finding{{Text: first, Context: first, Confidence: 0.9}}
}
