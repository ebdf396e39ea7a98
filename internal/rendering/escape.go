// Package rendering turns annotated spans into HTML markup.
package rendering

import "strings"

// EscapeHTML escapes the characters that are significant in HTML text and attribute values.
// Special characters: & < > " '
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, `&<>"'`) {
		return text
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
