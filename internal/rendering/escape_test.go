package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeHTML(""))
}

func TestEscapeHTML_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeHTML(text))
}

func TestEscapeHTML_AllSpecialCharacters(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#39;", EscapeHTML(`&<>"'`))
}

func TestEscapeHTML_MixedText(t *testing.T) {
	result := EscapeHTML(`Tom & Jerry said "<hi>" it's fine`)
	assert.Equal(t, "Tom &amp; Jerry said &quot;&lt;hi&gt;&quot; it&#39;s fine", result)
}

func TestEscapeHTML_AlreadyEscapedIsEscapedAgain(t *testing.T) {
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
}

func TestEscapeHTML_Unicode(t *testing.T) {
	assert.Equal(t, "café &lt;ü&gt;", EscapeHTML("café <ü>"))
}
