package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/types"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div id=\"root\">" + html + "</div>"))
	require.NoError(t, err)
	return doc
}

func TestMarkClass(t *testing.T) {
	assert.Equal(t, "criteria-mark-0", MarkClass(0))
	assert.Equal(t, "criteria-mark-1", MarkClass(1))
	assert.Equal(t, "criteria-mark-2", MarkClass(2))
	assert.Equal(t, "criteria-mark-1", MarkClass(7))
	assert.Equal(t, "criteria-mark-1", MarkClass(-1))
}

func TestRender_NoSpansEscapesOnce(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", Render("a <b> & c", nil))
	assert.Equal(t, "plain", Render("plain", []types.MergedSpan{}))
}

func TestRender_SingleSpan(t *testing.T) {
	text := "He ran quickly home."
	html := Render(text, []types.MergedSpan{{Start: 7, End: 14, Score: 2, Criterion: "Use Adverbs"}})

	assert.Equal(t,
		`He ran <span class="criteria-mark-2" data-tooltip="Use Adverbs" data-criteria="use adverbs" data-score="2">quickly</span> home.`,
		html)
}

func TestRender_EscapesInsideAndAroundSpans(t *testing.T) {
	text := `Tom & "Jerry" <ran>`
	html := Render(text, []types.MergedSpan{{Start: 6, End: 13, Score: 0, Criterion: `Use "quotes" & <marks>`}})

	doc := parse(t, html)
	span := doc.Find("span.criteria-mark-0")
	require.Equal(t, 1, span.Length())
	assert.Equal(t, `"Jerry"`, span.Text())
	tooltip, _ := span.Attr("data-tooltip")
	assert.Equal(t, `Use "quotes" & <marks>`, tooltip)
	crit, _ := span.Attr("data-criteria")
	assert.Equal(t, `use "quotes" & <marks>`, crit)
	assert.Equal(t, text, doc.Find("#root").Text())
	assert.NotContains(t, html, "<ran>")
}

func TestRender_TextIdentityAcrossSpans(t *testing.T) {
	text := "Café <au> lait, très bien & 'fine'"
	spans := []types.MergedSpan{
		{Start: 0, End: 4, Score: 1, Criterion: "A"},
		{Start: 16, End: 20, Score: 2, Criterion: "B"},
		{Start: 28, End: 34, Score: 0, Criterion: "C"},
	}
	html := Render(text, spans)

	doc := parse(t, html)
	assert.Equal(t, text, doc.Find("#root").Text())
	assert.Equal(t, 3, doc.Find("span").Length())
	assert.Equal(t, "très", doc.Find("span.criteria-mark-2").Text())
	assert.Equal(t, "'fine'", doc.Find("span.criteria-mark-0").Text())
}

func TestRender_WholeTextSpan(t *testing.T) {
	html := Render("Hello", []types.MergedSpan{{Start: 0, End: 5, Score: 1, Criterion: "Greeting"}})
	assert.True(t, strings.HasPrefix(html, "<span "))
	assert.True(t, strings.HasSuffix(html, "Hello</span>"))
}

func TestRender_SkipsInvalidSpans(t *testing.T) {
	spans := []types.MergedSpan{
		{Start: 0, End: 2, Score: 1, Criterion: "A"},
		{Start: 1, End: 3, Score: 1, Criterion: "overlapping"},
		{Start: 3, End: 99, Score: 1, Criterion: "too long"},
	}
	html := Render("abcdef", spans)
	doc := parse(t, html)
	assert.Equal(t, 1, doc.Find("span").Length())
	assert.Equal(t, "abcdef", doc.Find("#root").Text())
}

func TestCheckSpans(t *testing.T) {
	assert.NoError(t, CheckSpans("abcdef", []types.MergedSpan{{Start: 0, End: 2}, {Start: 2, End: 6}}))

	var spanErr *SpanError
	err := CheckSpans("abcdef", []types.MergedSpan{{Start: 0, End: 3}, {Start: 2, End: 4}})
	require.ErrorAs(t, err, &spanErr)
	assert.Equal(t, 1, spanErr.Index)

	err = CheckSpans("abc", []types.MergedSpan{{Start: 1, End: 4}})
	require.ErrorAs(t, err, &spanErr)
	assert.Contains(t, err.Error(), "beyond text length")

	err = CheckSpans("abc", []types.MergedSpan{{Start: 2, End: 2}})
	require.ErrorAs(t, err, &spanErr)
	assert.Contains(t, err.Error(), "empty range")
}
