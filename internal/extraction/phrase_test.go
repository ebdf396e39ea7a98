package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/types"
)

func TestMatchPhrases_LongestWindowFirst(t *testing.T) {
	got := MatchPhrases(
		"The student wrote the cat sat on the mat in the opening.",
		"Once upon a time the cat sat on the mat.",
	)
	require.Len(t, got, 4)
	assert.Equal(t, "the cat sat on the mat", got[0].Text)
	assert.Equal(t, "the cat sat", got[3].Text)
	for _, c := range got {
		assert.Equal(t, types.SourcePhraseMatch, c.Source)
		assert.Equal(t, types.PriorityPhraseMatch, c.Priority)
	}
}

func TestMatchPhrases_SkipsMetaClauses(t *testing.T) {
	got := MatchPhrases("This demonstrates the cat sat on the mat", "the cat sat on the mat")
	assert.Empty(t, got)
}

func TestMatchPhrases_CaseSensitive(t *testing.T) {
	assert.Empty(t, MatchPhrases("Opens with Once Upon A Time nicely", "once upon a time there was a fox"))

	got := MatchPhrases("Opens with once upon a time nicely", "once upon a time there was a fox")
	require.NotEmpty(t, got)
	assert.Equal(t, "once upon a time", got[0].Text)
}

func TestMatchPhrases_EmptyInputs(t *testing.T) {
	assert.Empty(t, MatchPhrases("", "text"))
	assert.Empty(t, MatchPhrases("a long justification here", ""))
}
