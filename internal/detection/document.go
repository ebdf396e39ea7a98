package detection

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	sentenceSeparator  = regexp.MustCompile(`[.!?]+`)
	paragraphSeparator = regexp.MustCompile(`\n+`)
)

// token is one whitespace-separated word. Word has edge punctuation trimmed and keeps
// the sample's casing so it can be located again; Key is its lowercase lookup form.
type token struct {
	Raw  string
	Word string
	Key  string
}

// document is a sample pre-split for the detectors. Sentences and paragraphs are
// trimmed substrings of the original text.
type document struct {
	text       string
	lower      string
	lines      []string
	sentences  []string
	paragraphs []string
	tokens     []token
}

func newDocument(text string) *document {
	d := &document{
		text:  text,
		lower: strings.ToLower(text),
		lines: strings.Split(text, "\n"),
	}
	d.sentences = splitTrimmed(sentenceSeparator, text)
	d.paragraphs = splitTrimmed(paragraphSeparator, text)
	d.tokens = tokenize(text)
	return d
}

func splitTrimmed(re *regexp.Regexp, s string) []string {
	parts := re.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func tokenize(s string) []token {
	fields := strings.Fields(s)
	tokens := make([]token, 0, len(fields))
	for _, f := range fields {
		word := trimWord(f)
		tokens = append(tokens, token{Raw: f, Word: word, Key: strings.ToLower(word)})
	}
	return tokens
}

// trimWord strips leading and trailing characters that are neither letters nor digits,
// keeping inner apostrophes and hyphens.
func trimWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// window joins the raw tokens around index i.
func window(tokens []token, i, before, after int) string {
	start := max(0, i-before)
	end := min(len(tokens), i+after+1)
	parts := make([]string, 0, end-start)
	for _, t := range tokens[start:end] {
		parts = append(parts, t.Raw)
	}
	return strings.Join(parts, " ")
}

// around returns text within radius bytes of [start, end), widened to rune boundaries.
func around(text string, start, end, radius int) string {
	from := max(0, start-radius)
	to := min(len(text), end+radius)
	for from > 0 && !isRuneStart(text[from]) {
		from--
	}
	for to < len(text) && !isRuneStart(text[to]) {
		to++
	}
	return text[from:to]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
