package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// MarkClass returns the CSS class for an achievement score.
// Scores outside 0..2 render as partially met.
func MarkClass(score int) string {
	switch score {
	case types.ScoreNotMet, types.ScorePartial, types.ScoreAchieved:
		return "criteria-mark-" + strconv.Itoa(score)
	default:
		return "criteria-mark-1"
	}
}

// Render walks text once and wraps each span in an annotation element. Text outside
// spans is escaped; with no spans the result is the escaped text. Spans must be
// ordered and non-overlapping with rune offsets into text; invalid spans are skipped.
func Render(text string, spans []types.MergedSpan) string {
	if len(spans) == 0 {
		return EscapeHTML(text)
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + len(spans)*96)

	pos := 0
	for _, span := range spans {
		if span.Start < pos || span.End > len(runes) || span.Start >= span.End {
			continue
		}
		b.WriteString(EscapeHTML(string(runes[pos:span.Start])))
		writeSpan(&b, string(runes[span.Start:span.End]), span)
		pos = span.End
	}
	b.WriteString(EscapeHTML(string(runes[pos:])))

	return b.String()
}

func writeSpan(b *strings.Builder, content string, span types.MergedSpan) {
	name := EscapeHTML(span.Criterion)
	fmt.Fprintf(b, `<span class="%s" data-tooltip="%s" data-criteria="%s" data-score="%d">`,
		MarkClass(span.Score), name, EscapeHTML(strings.ToLower(span.Criterion)), span.Score)
	b.WriteString(EscapeHTML(content))
	b.WriteString("</span>")
}

// CheckSpans returns a *SpanError for the first span that Render would skip.
func CheckSpans(text string, spans []types.MergedSpan) error {
	length := len([]rune(text))
	pos := 0
	for i, span := range spans {
		switch {
		case span.Start >= span.End:
			return &SpanError{Index: i, Message: fmt.Sprintf("empty range %d..%d", span.Start, span.End)}
		case span.End > length:
			return &SpanError{Index: i, Message: fmt.Sprintf("end %d beyond text length %d", span.End, length)}
		case span.Start < pos:
			return &SpanError{Index: i, Message: fmt.Sprintf("start %d overlaps previous end %d", span.Start, pos)}
		}
		pos = span.End
	}
	return nil
}
